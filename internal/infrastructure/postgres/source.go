package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/groundnut-admin/internal/application/importer"
)

// Asegura que Source implementa el puerto del importador.
var _ importer.Source = (*Source)(nil)

// Source lecturas masivas del datastore remoto para el import de sesión.
// Solo lectura: las mutaciones locales nunca se escriben de vuelta por aquí.
type Source struct {
	pool *pgxpool.Pool
}

// NewSource construye el adaptador de lectura remota.
func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

// FetchUsers descarga todos los usuarios.
func (s *Source) FetchUsers(ctx context.Context) ([]importer.UserRecord, error) {
	query := `
		SELECT id, user_name, email_address, password, type, country_code, mobile_number, status, created_at
		FROM users ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []importer.UserRecord
	for rows.Next() {
		var r importer.UserRecord
		if err := rows.Scan(&r.ID, &r.UserName, &r.Email, &r.Password, &r.Role,
			&r.CountryCode, &r.Mobile, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchCompanies descarga todas las empresas.
func (s *Source) FetchCompanies(ctx context.Context) ([]importer.CompanyRecord, error) {
	query := `SELECT id, name, location_id, status, created_at FROM companies ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var out []importer.CompanyRecord
	for rows.Next() {
		var r importer.CompanyRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.LocationID, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchVehicles descarga todos los vehículos.
func (s *Source) FetchVehicles(ctx context.Context) ([]importer.VehicleRecord, error) {
	query := `SELECT id, number, company_id, status, created_at FROM vehicles ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var out []importer.VehicleRecord
	for rows.Next() {
		var r importer.VehicleRecord
		if err := rows.Scan(&r.ID, &r.Number, &r.CompanyID, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchProducts descarga todos los lotes. Los NUMERIC llegan como decimal vía
// el codec registrado en el pool.
func (s *Source) FetchProducts(ctx context.Context) ([]importer.ProductRecord, error) {
	query := `
		SELECT id, company_id, vehicle_id, slip_number, purchase_date, bag,
		       price, weight, net_weight, total_price, final_price, created_at
		FROM products ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []importer.ProductRecord
	for rows.Next() {
		var r importer.ProductRecord
		if err := rows.Scan(&r.ID, &r.CompanyID, &r.VehicleID, &r.SlipNumber, &r.PurchaseDate, &r.Bag,
			&r.Price, &r.Weight, &r.NetWeight, &r.TotalPrice, &r.FinalPrice, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchOrders descarga todos los pedidos.
func (s *Source) FetchOrders(ctx context.Context) ([]importer.OrderRecord, error) {
	query := `SELECT id, product_id, status, amount, created_at FROM orders ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []importer.OrderRecord
	for rows.Next() {
		var r importer.OrderRecord
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Status, &r.Amount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchTransactions descarga todos los movimientos financieros.
func (s *Source) FetchTransactions(ctx context.Context) ([]importer.TransactionRecord, error) {
	query := `SELECT id, type, amount, description, created_at FROM transactions ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []importer.TransactionRecord
	for rows.Next() {
		var r importer.TransactionRecord
		if err := rows.Scan(&r.ID, &r.Type, &r.Amount, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchCities descarga todas las ciudades.
func (s *Source) FetchCities(ctx context.Context) ([]importer.CityRecord, error) {
	query := `SELECT id, name, status, created_at FROM cities ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	var out []importer.CityRecord
	for rows.Next() {
		var r importer.CityRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FetchAlerts descarga las alertas del sistema remoto.
func (s *Source) FetchAlerts(ctx context.Context) ([]importer.AlertRecord, error) {
	query := `SELECT id, type, message, resolved, created_at FROM system_alerts ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query system_alerts: %w", err)
	}
	defer rows.Close()

	var out []importer.AlertRecord
	for rows.Next() {
		var r importer.AlertRecord
		if err := rows.Scan(&r.ID, &r.Type, &r.Message, &r.Resolved, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan system_alert: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
