package metrics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
)

// MonthlyRevenue suma los montos de las transacciones de tipo sale cuyo
// mes/año de creación coincide con el mes calendario de now.
func MonthlyRevenue(txs []entity.Transaction, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type != entity.TxSale {
			continue
		}
		if tx.CreatedAt.Year() == now.Year() && tx.CreatedAt.Month() == now.Month() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// PendingOrders cuenta los pedidos en estado pending.
func PendingOrders(orders []entity.Order) int {
	var n int
	for _, o := range orders {
		if o.Status == entity.OrderPending {
			n++
		}
	}
	return n
}

// RecentTransactions cuenta las transacciones de las últimas 24 horas.
func RecentTransactions(txs []entity.Transaction, now time.Time) int {
	cutoff := now.Add(-24 * time.Hour)
	var n int
	for _, tx := range txs {
		if !tx.CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n
}

// UnresolvedAlerts cuenta las alertas sin resolver.
func UnresolvedAlerts(alerts []entity.SystemAlert) int {
	var n int
	for _, a := range alerts {
		if !a.Resolved {
			n++
		}
	}
	return n
}
