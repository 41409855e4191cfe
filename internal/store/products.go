package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/alerting"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// ProductPatch campos opcionales para actualizar un producto.
type ProductPatch struct {
	CompanyID     *int64
	CompanyName   *string
	VehicleID     *int64
	VehicleNumber *string
	SlipNumber    *string
	PurchaseDate  *string
	Bag           *int
	Price         *decimal.Decimal
	Weight        *decimal.Decimal
	NetWeight     *decimal.Decimal
	TotalPrice    *decimal.Decimal
	FinalPrice    *decimal.Decimal
}

// AddProduct registra un lote recibido. Es la mutación con más efectos
// derivados: activa la empresa de origen si estaba inactiva, registra la
// transacción sintética de venta por el precio final, evalúa la regla de
// inventario bajo y regenera las alertas derivadas.
func (s *Store) AddProduct(p entity.Product) ([]entity.Product, error) {
	if strings.TrimSpace(p.SlipNumber) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	company, ok := s.companyByID(p.CompanyID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrMissingReference
	}
	vehicle, ok := s.vehicleByID(p.VehicleID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrMissingReference
	}
	if p.CompanyName == "" {
		p.CompanyName = company.Name
	}
	if p.VehicleNumber == "" {
		p.VehicleNumber = vehicle.Number
	}
	if p.ID == 0 {
		p.ID = s.allocID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock()
	}
	s.products = append(append([]entity.Product(nil), s.products...), p)
	s.persist(localstore.KeyProducts, s.products)
	s.logActivity(entity.ActivityProduct,
		fmt.Sprintf("New product received: %s from %s", p.SlipNumber, p.CompanyName),
		entity.ActivitySuccess)

	if !company.Status {
		active := true
		s.updateCompanyLocked(company.ID, CompanyPatch{Status: &active}, false)
		s.logActivity(entity.ActivityCompany,
			fmt.Sprintf("%s activated upon product receipt", company.Name),
			entity.ActivityInfo)
	}

	tx := entity.Transaction{
		ID:          s.allocID(),
		Type:        entity.TxSale,
		Amount:      p.FinalPrice,
		Description: fmt.Sprintf("Sale transaction for %s from %s - %skg", p.SlipNumber, p.CompanyName, p.Weight),
		CreatedAt:   s.clock(),
	}
	s.transactions = append(append([]entity.Transaction(nil), s.transactions...), tx)
	s.persist(localstore.KeyTransactions, s.transactions)

	if a := alerting.LowInventory(p, s.clock()); a != nil {
		s.pushAlert(*a)
	}
	s.regenerateDataAlerts()

	snapshot := append([]entity.Product(nil), s.products...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, true)
	return snapshot, nil
}

// UpdateProduct aplica un patch parcial y regenera las alertas derivadas (el
// peso puede cruzar el umbral de inventario). Id ausente es un no-op.
func (s *Store) UpdateProduct(id int64, patch ProductPatch) []entity.Product {
	s.mu.Lock()
	alertsTouched := false
	next := append([]entity.Product(nil), s.products...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		p := &next[i]
		if patch.CompanyID != nil {
			p.CompanyID = *patch.CompanyID
		}
		if patch.CompanyName != nil {
			p.CompanyName = *patch.CompanyName
		}
		if patch.VehicleID != nil {
			p.VehicleID = *patch.VehicleID
		}
		if patch.VehicleNumber != nil {
			p.VehicleNumber = *patch.VehicleNumber
		}
		if patch.SlipNumber != nil {
			p.SlipNumber = *patch.SlipNumber
		}
		if patch.PurchaseDate != nil {
			p.PurchaseDate = *patch.PurchaseDate
		}
		if patch.Bag != nil {
			p.Bag = *patch.Bag
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Weight != nil {
			p.Weight = *patch.Weight
		}
		if patch.NetWeight != nil {
			p.NetWeight = *patch.NetWeight
		}
		if patch.TotalPrice != nil {
			p.TotalPrice = *patch.TotalPrice
		}
		if patch.FinalPrice != nil {
			p.FinalPrice = *patch.FinalPrice
		}
		s.products = next
		s.persist(localstore.KeyProducts, s.products)
		s.logActivity(entity.ActivityProduct, fmt.Sprintf("Product %s updated", p.SlipNumber), entity.ActivityInfo)
		s.regenerateDataAlerts()
		alertsTouched = true
		break
	}
	snapshot := append([]entity.Product(nil), s.products...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, alertsTouched)
	return snapshot
}

// DeleteProduct elimina por id. Las transacciones asociadas permanecen: son
// movimientos financieros inmutables.
func (s *Store) DeleteProduct(id int64) []entity.Product {
	s.mu.Lock()
	alertsTouched := false
	next := make([]entity.Product, 0, len(s.products))
	var deleted *entity.Product
	for _, p := range s.products {
		if p.ID == id {
			removed := p
			deleted = &removed
			continue
		}
		next = append(next, p)
	}
	if deleted != nil {
		s.products = next
		s.persist(localstore.KeyProducts, s.products)
		s.logActivity(entity.ActivityProduct, fmt.Sprintf("Product %s has been deleted", deleted.SlipNumber), entity.ActivityWarning)
		s.regenerateDataAlerts()
		alertsTouched = true
	}
	snapshot := append([]entity.Product(nil), s.products...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, alertsTouched)
	return snapshot
}
