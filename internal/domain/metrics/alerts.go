package metrics

import (
	"sort"
	"time"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
)

const (
	// visibleAlertWindow ventana de visualización de alertas.
	visibleAlertWindow = 10 * 24 * time.Hour
	// visibleAlertCap tope de alertas mostradas, independiente del tope de almacenamiento.
	visibleAlertCap = 25
)

// VisibleAlerts filtra la vista de alertas del dashboard: sin resolver, dentro
// de los últimos 10 días, más recientes primero, máximo 25.
func VisibleAlerts(alerts []entity.SystemAlert, now time.Time) []entity.SystemAlert {
	cutoff := now.Add(-visibleAlertWindow)

	out := make([]entity.SystemAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Resolved || a.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > visibleAlertCap {
		out = out[:visibleAlertCap]
	}
	return out
}
