package store

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// OrderPatch campos opcionales para actualizar un pedido.
type OrderPatch struct {
	ProductID *int64
	Status    *entity.OrderStatus
	Amount    *decimal.Decimal
}

// AddOrder registra un pedido. Debe referenciar un producto existente; el
// status por defecto es pending.
func (s *Store) AddOrder(o entity.Order) ([]entity.Order, error) {
	s.mu.Lock()
	if _, ok := s.productByID(o.ProductID); !ok {
		s.mu.Unlock()
		return nil, domain.ErrMissingReference
	}
	if o.Status == "" {
		o.Status = entity.OrderPending
	}
	if o.ID == 0 {
		o.ID = s.allocID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.clock()
	}
	s.orders = append(append([]entity.Order(nil), s.orders...), o)
	s.persist(localstore.KeyOrders, s.orders)
	s.logActivity(entity.ActivityProduct, fmt.Sprintf("Order #%d placed", o.ID), entity.ActivitySuccess)

	snapshot := append([]entity.Order(nil), s.orders...)
	s.mu.Unlock()
	return snapshot, nil
}

// UpdateOrder aplica un patch parcial. Id ausente es un no-op silencioso.
func (s *Store) UpdateOrder(id int64, patch OrderPatch) []entity.Order {
	s.mu.Lock()
	next := append([]entity.Order(nil), s.orders...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		o := &next[i]
		if patch.ProductID != nil {
			o.ProductID = *patch.ProductID
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.Amount != nil {
			o.Amount = *patch.Amount
		}
		s.orders = next
		s.persist(localstore.KeyOrders, s.orders)
		s.logActivity(entity.ActivityProduct, fmt.Sprintf("Order #%d updated to %s", o.ID, o.Status), entity.ActivityInfo)
		break
	}
	snapshot := append([]entity.Order(nil), s.orders...)
	s.mu.Unlock()
	return snapshot
}

// DeleteOrder elimina por id.
func (s *Store) DeleteOrder(id int64) []entity.Order {
	s.mu.Lock()
	next := make([]entity.Order, 0, len(s.orders))
	found := false
	for _, o := range s.orders {
		if o.ID == id {
			found = true
			continue
		}
		next = append(next, o)
	}
	if found {
		s.orders = next
		s.persist(localstore.KeyOrders, s.orders)
		s.logActivity(entity.ActivityProduct, fmt.Sprintf("Order #%d cancelled and removed", id), entity.ActivityWarning)
	}
	snapshot := append([]entity.Order(nil), s.orders...)
	s.mu.Unlock()
	return snapshot
}

// AddTransaction registra un movimiento financiero manual (las ventas
// sintéticas las crea AddProduct).
func (s *Store) AddTransaction(tx entity.Transaction) ([]entity.Transaction, error) {
	if tx.Type != entity.TxPurchase && tx.Type != entity.TxSale && tx.Type != entity.TxPayment {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	if tx.ID == 0 {
		tx.ID = s.allocID()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.clock()
	}
	s.transactions = append(append([]entity.Transaction(nil), s.transactions...), tx)
	s.persist(localstore.KeyTransactions, s.transactions)

	snapshot := append([]entity.Transaction(nil), s.transactions...)
	s.mu.Unlock()
	return snapshot, nil
}

func (s *Store) productByID(id int64) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
