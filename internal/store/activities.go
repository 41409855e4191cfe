package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

const (
	activityRetention = 10 * 24 * time.Hour
	activityCap       = 20
)

// logActivity inserta una entrada al frente del registro de auditoría y aplica
// la retención (ventana de 10 días, tope de 20 entradas). Requiere lock.
func (s *Store) logActivity(cat entity.ActivityCategory, message string, status entity.ActivityStatus) {
	now := s.clock()
	entry := entity.Activity{
		ID:        uuid.New().String(),
		Category:  cat,
		Message:   message,
		Status:    status,
		CreatedAt: now,
	}
	s.activities = trimActivities(append([]entity.Activity{entry}, s.activities...), now)
	s.persist(localstore.KeyActivities, s.activities)
}

// sortAndTrimActivities reordena el registro (más reciente primero) y aplica
// la retención. Lo usa el empalme de importación, que agrega entradas con
// fechas arbitrarias. Requiere lock.
func (s *Store) sortAndTrimActivities() {
	sorted := append([]entity.Activity(nil), s.activities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	s.activities = trimActivities(sorted, s.clock())
}

// trimActivities descarta entradas fuera de ventana y recorta al tope,
// conservando las más recientes primero.
func trimActivities(in []entity.Activity, now time.Time) []entity.Activity {
	cutoff := now.Add(-activityRetention)
	out := make([]entity.Activity, 0, len(in))
	for _, a := range in {
		if a.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, a)
		if len(out) == activityCap {
			break
		}
	}
	return out
}
