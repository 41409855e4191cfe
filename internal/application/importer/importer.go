// Package importer trae el estado del datastore remoto al store local al
// inicio de la sesión. Las colecciones se piden en paralelo y cada una se
// empalma en cuanto llega: entre colecciones no hay transacción, el mismo
// compromiso de consistencia débil del resto de la sincronización. El fallo de
// un tipo no bloquea a los demás; el fallo total deja el estado local intacto.
package importer

import (
	"context"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// Source puerto de salida hacia el datastore remoto. Lo implementa
// internal/infrastructure/postgres.
type Source interface {
	FetchUsers(ctx context.Context) ([]UserRecord, error)
	FetchCompanies(ctx context.Context) ([]CompanyRecord, error)
	FetchVehicles(ctx context.Context) ([]VehicleRecord, error)
	FetchProducts(ctx context.Context) ([]ProductRecord, error)
	FetchOrders(ctx context.Context) ([]OrderRecord, error)
	FetchTransactions(ctx context.Context) ([]TransactionRecord, error)
	FetchCities(ctx context.Context) ([]CityRecord, error)
	FetchAlerts(ctx context.Context) ([]AlertRecord, error)
}

// Importer orquesta un import completo contra un store destino.
type Importer struct {
	source Source
	target *store.Store
	log    *logger.Logger
	ids    *idMapper
}

// New el mapeador de ids vive lo que vive el importador: un UUID remoto
// recibe el mismo id local en todos los imports de la sesión.
func New(source Source, target *store.Store, log *logger.Logger) *Importer {
	return &Importer{
		source: source,
		target: target,
		log:    log,
		ids:    newIDMapper(),
	}
}

// Summary resultado de un import: agregados por colección y fallos por tipo.
type Summary struct {
	Added  map[string]int
	Failed map[string]error
}

// Run ejecuta las ocho descargas en paralelo y empalma cada colección en
// cuanto llega su resultado.
func (imp *Importer) Run(ctx context.Context) Summary {
	type result[T any] struct {
		rows []T
		err  error
	}

	usersCh := make(chan result[UserRecord], 1)
	companiesCh := make(chan result[CompanyRecord], 1)
	vehiclesCh := make(chan result[VehicleRecord], 1)
	productsCh := make(chan result[ProductRecord], 1)
	ordersCh := make(chan result[OrderRecord], 1)
	txCh := make(chan result[TransactionRecord], 1)
	citiesCh := make(chan result[CityRecord], 1)
	alertsCh := make(chan result[AlertRecord], 1)

	go func() {
		rows, err := imp.source.FetchUsers(ctx)
		usersCh <- result[UserRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchCompanies(ctx)
		companiesCh <- result[CompanyRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchVehicles(ctx)
		vehiclesCh <- result[VehicleRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchProducts(ctx)
		productsCh <- result[ProductRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchOrders(ctx)
		ordersCh <- result[OrderRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchTransactions(ctx)
		txCh <- result[TransactionRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchCities(ctx)
		citiesCh <- result[CityRecord]{rows, err}
	}()
	go func() {
		rows, err := imp.source.FetchAlerts(ctx)
		alertsCh <- result[AlertRecord]{rows, err}
	}()

	summary := Summary{Added: make(map[string]int), Failed: make(map[string]error)}
	apply := func(key string, err error, merge func() int) {
		if err != nil {
			summary.Failed[key] = err
			imp.log.Warn().Err(err).Str("coleccion", key).Msg("fetch remoto falló; se omite la colección")
			return
		}
		summary.Added[key] = merge()
	}

	// Las ciudades y empresas van primero: el resto las referencia.
	cities := <-citiesCh
	apply("cities", cities.err, func() int {
		return imp.target.MergeCities(imp.mapCities(cities.rows))
	})
	companies := <-companiesCh
	apply("companies", companies.err, func() int {
		return imp.target.MergeCompanies(imp.mapCompanies(companies.rows))
	})
	vehicles := <-vehiclesCh
	apply("vehicles", vehicles.err, func() int {
		return imp.target.MergeVehicles(imp.mapVehicles(vehicles.rows))
	})
	products := <-productsCh
	apply("products", products.err, func() int {
		return imp.target.MergeProducts(imp.mapProducts(products.rows))
	})
	users := <-usersCh
	apply("users", users.err, func() int {
		return imp.target.MergeUsers(imp.mapUsers(users.rows))
	})
	orders := <-ordersCh
	apply("orders", orders.err, func() int {
		return imp.target.MergeOrders(imp.mapOrders(orders.rows))
	})
	transactions := <-txCh
	apply("transactions", transactions.err, func() int {
		return imp.target.MergeTransactions(imp.mapTransactions(transactions.rows))
	})
	alerts := <-alertsCh
	apply("alerts", alerts.err, func() int {
		return imp.target.MergeAlerts(imp.mapAlerts(alerts.rows))
	})

	return summary
}

func (imp *Importer) mapUsers(rows []UserRecord) []entity.User {
	out := make([]entity.User, 0, len(rows))
	for _, r := range rows {
		role := entity.RoleUser
		if r.Role == string(entity.RoleAdmin) {
			role = entity.RoleAdmin
		}
		out = append(out, entity.User{
			ID:           imp.ids.localID(r.ID),
			RemoteID:     r.ID,
			UserName:     r.UserName,
			Email:        r.Email,
			PasswordHash: r.Password,
			Role:         role,
			CountryCode:  r.CountryCode,
			Mobile:       r.Mobile,
			Status:       r.Status,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out
}

func (imp *Importer) mapCompanies(rows []CompanyRecord) []entity.Company {
	out := make([]entity.Company, 0, len(rows))
	for _, r := range rows {
		c := entity.Company{
			ID:        imp.ids.localID(r.ID),
			RemoteID:  r.ID,
			Name:      r.Name,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		}
		if r.LocationID != nil {
			loc := imp.ids.localID(*r.LocationID)
			c.LocationID = &loc
			for _, city := range imp.target.Cities() {
				if city.ID == loc {
					c.LocationName = city.Name
				}
			}
		}
		out = append(out, c)
	}
	return out
}

func (imp *Importer) mapVehicles(rows []VehicleRecord) []entity.Vehicle {
	out := make([]entity.Vehicle, 0, len(rows))
	for _, r := range rows {
		v := entity.Vehicle{
			ID:        imp.ids.localID(r.ID),
			RemoteID:  r.ID,
			Number:    r.Number,
			CompanyID: imp.ids.localID(r.CompanyID),
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		}
		for _, c := range imp.target.Companies() {
			if c.ID == v.CompanyID {
				v.CompanyName = c.Name
			}
		}
		out = append(out, v)
	}
	return out
}

func (imp *Importer) mapProducts(rows []ProductRecord) []entity.Product {
	out := make([]entity.Product, 0, len(rows))
	for _, r := range rows {
		p := entity.Product{
			ID:           imp.ids.localID(r.ID),
			RemoteID:     r.ID,
			CompanyID:    imp.ids.localID(r.CompanyID),
			VehicleID:    imp.ids.localID(r.VehicleID),
			SlipNumber:   r.SlipNumber,
			PurchaseDate: r.PurchaseDate,
			Bag:          r.Bag,
			Price:        r.Price,
			Weight:       r.Weight,
			NetWeight:    r.NetWeight,
			TotalPrice:   r.TotalPrice,
			FinalPrice:   r.FinalPrice,
			CreatedAt:    r.CreatedAt,
		}
		for _, c := range imp.target.Companies() {
			if c.ID == p.CompanyID {
				p.CompanyName = c.Name
			}
		}
		for _, v := range imp.target.Vehicles() {
			if v.ID == p.VehicleID {
				p.VehicleNumber = v.Number
			}
		}
		out = append(out, p)
	}
	return out
}

func (imp *Importer) mapOrders(rows []OrderRecord) []entity.Order {
	out := make([]entity.Order, 0, len(rows))
	for _, r := range rows {
		status := entity.OrderStatus(r.Status)
		switch status {
		case entity.OrderPending, entity.OrderCompleted, entity.OrderCancelled:
		default:
			status = entity.OrderPending
		}
		out = append(out, entity.Order{
			ID:        imp.ids.localID(r.ID),
			ProductID: imp.ids.localID(r.ProductID),
			Status:    status,
			Amount:    r.Amount,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

func (imp *Importer) mapTransactions(rows []TransactionRecord) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Transaction{
			ID:          imp.ids.localID(r.ID),
			Type:        entity.TransactionType(r.Type),
			Amount:      r.Amount,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}

func (imp *Importer) mapCities(rows []CityRecord) []entity.City {
	out := make([]entity.City, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.City{
			ID:        imp.ids.localID(r.ID),
			RemoteID:  r.ID,
			Name:      r.Name,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

func (imp *Importer) mapAlerts(rows []AlertRecord) []entity.SystemAlert {
	out := make([]entity.SystemAlert, 0, len(rows))
	for _, r := range rows {
		alertType := entity.AlertType(r.Type)
		switch alertType {
		case entity.AlertWarning, entity.AlertError, entity.AlertInfo:
		default:
			alertType = entity.AlertInfo
		}
		out = append(out, entity.SystemAlert{
			ID:        imp.ids.localID(r.ID),
			Type:      alertType,
			Message:   r.Message,
			Resolved:  r.Resolved,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
