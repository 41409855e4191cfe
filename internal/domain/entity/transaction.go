package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento financiero.
type TransactionType string

const (
	TxPurchase TransactionType = "purchase"
	TxSale     TransactionType = "sale"
	TxPayment  TransactionType = "payment"
)

// Transaction movimiento financiero. Inmutable tras su creación; la agregación
// de ingresos mensuales se calcula solo sobre las de tipo sale.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
