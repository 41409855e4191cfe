package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
)

// GrowthDTO porcentajes de crecimiento mensual por colección.
type GrowthDTO struct {
	Users     int `json:"users"`
	Companies int `json:"companies"`
	Vehicles  int `json:"vehicles"`
	Products  int `json:"products"`
}

// DashboardSummaryDTO resumen del panel principal: conteos, crecimientos y
// agregados financieros derivados del snapshot actual.
type DashboardSummaryDTO struct {
	TotalUsers         int                  `json:"total_users"`
	TotalCompanies     int                  `json:"total_companies"`
	TotalVehicles      int                  `json:"total_vehicles"`
	TotalProducts      int                  `json:"total_products"`
	Growth             GrowthDTO            `json:"growth"`
	MonthlyRevenue     decimal.Decimal      `json:"monthly_revenue"`
	PendingOrders      int                  `json:"pending_orders"`
	RecentTransactions int                  `json:"recent_transactions"`
	UnresolvedAlerts   int                  `json:"unresolved_alerts"`
	RecentActivities   []ActivityDTO        `json:"recent_activities"`
	VisibleAlerts      []entity.SystemAlert `json:"visible_alerts"`
}

// ActivityDTO entrada del registro de actividad con la marca relativa ya
// formateada.
type ActivityDTO struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Status   string `json:"status"`
	TimeAgo  string `json:"time_ago"`
}

// RegionalStatDTO fila del desempeño por región.
type RegionalStatDTO struct {
	Region    string          `json:"region"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int             `json:"orders"`
	Companies int             `json:"companies"`
	GrowthPct int             `json:"growth_pct"`
}
