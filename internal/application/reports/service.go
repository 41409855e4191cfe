// Package reports arma los agregados del panel (resumen, desempeño regional)
// y los exporta como CSV o PDF. Todo se deriva del snapshot del store en el
// momento de la petición; no hay estado propio.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/domain/metrics"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// Service construye resúmenes y exportaciones sobre un store.
type Service struct {
	store *store.Store
	clock func() time.Time
}

// NewService clock nil usa time.Now.
func NewService(s *store.Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: s, clock: clock}
}

// Summary resumen completo del panel principal.
func (s *Service) Summary() dto.DashboardSummaryDTO {
	now := s.clock()
	users := s.store.Users()
	companies := s.store.Companies()
	vehicles := s.store.Vehicles()
	products := s.store.Products()
	orders := s.store.Orders()
	transactions := s.store.Transactions()
	alerts := s.store.Alerts()
	activities := s.store.Activities()

	recent := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		recent = append(recent, dto.ActivityDTO{
			ID:       a.ID,
			Category: string(a.Category),
			Message:  a.Message,
			Status:   string(a.Status),
			TimeAgo:  metrics.TimeAgo(a.CreatedAt, now),
		})
	}

	return dto.DashboardSummaryDTO{
		TotalUsers:     len(users),
		TotalCompanies: len(companies),
		TotalVehicles:  len(vehicles),
		TotalProducts:  len(products),
		Growth: dto.GrowthDTO{
			Users:     metrics.Growth(createdAts(users, func(u entity.User) time.Time { return u.CreatedAt }), now),
			Companies: metrics.Growth(createdAts(companies, func(c entity.Company) time.Time { return c.CreatedAt }), now),
			Vehicles:  metrics.Growth(createdAts(vehicles, func(v entity.Vehicle) time.Time { return v.CreatedAt }), now),
			Products:  metrics.Growth(createdAts(products, func(p entity.Product) time.Time { return p.CreatedAt }), now),
		},
		MonthlyRevenue:     metrics.MonthlyRevenue(transactions, now),
		PendingOrders:      metrics.PendingOrders(orders),
		RecentTransactions: metrics.RecentTransactions(transactions, now),
		UnresolvedAlerts:   metrics.UnresolvedAlerts(alerts),
		RecentActivities:   recent,
		VisibleAlerts:      metrics.VisibleAlerts(alerts, now),
	}
}

// Regional desempeño por región, con el crecimiento global de productos como
// desplazamiento.
func (s *Service) Regional() []dto.RegionalStatDTO {
	now := s.clock()
	products := s.store.Products()
	overall := metrics.Growth(createdAts(products, func(p entity.Product) time.Time { return p.CreatedAt }), now)

	stats := metrics.RegionalPerformance(s.store.Cities(), s.store.Companies(), products, overall)
	out := make([]dto.RegionalStatDTO, 0, len(stats))
	for _, st := range stats {
		out = append(out, dto.RegionalStatDTO{
			Region:    st.Region,
			Revenue:   st.Revenue,
			Orders:    st.Orders,
			Companies: st.Companies,
			GrowthPct: st.GrowthPct,
		})
	}
	return out
}

// CSV exporta el resumen y las filas regionales en un solo archivo plano.
func (s *Service) CSV() ([]byte, error) {
	summary := s.Summary()
	regional := s.Regional()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"total_users", fmt.Sprint(summary.TotalUsers)},
		{"total_companies", fmt.Sprint(summary.TotalCompanies)},
		{"total_vehicles", fmt.Sprint(summary.TotalVehicles)},
		{"total_products", fmt.Sprint(summary.TotalProducts)},
		{"monthly_revenue", summary.MonthlyRevenue.String()},
		{"pending_orders", fmt.Sprint(summary.PendingOrders)},
		{"recent_transactions", fmt.Sprint(summary.RecentTransactions)},
		{"unresolved_alerts", fmt.Sprint(summary.UnresolvedAlerts)},
		{},
		{"region", "revenue", "orders", "companies", "growth_pct"},
	}
	for _, r := range regional {
		rows = append(rows, []string{
			r.Region, r.Revenue.String(), fmt.Sprint(r.Orders), fmt.Sprint(r.Companies), fmt.Sprint(r.GrowthPct),
		})
	}
	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}

func createdAts[T any](items []T, at func(T) time.Time) []time.Time {
	out := make([]time.Time, 0, len(items))
	for _, it := range items {
		out = append(out, at(it))
	}
	return out
}
