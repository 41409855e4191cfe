package store

import (
	"github.com/tu-usuario/groundnut-admin/internal/domain/alerting"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// AddAlert agrega una alerta creada por el usuario y registra la actividad
// correspondiente. Devuelve el snapshot nuevo.
func (s *Store) AddAlert(a entity.SystemAlert) []entity.SystemAlert {
	s.mu.Lock()
	if a.ID == 0 {
		a.ID = s.allocAlertID()
	}
	if a.Origin == "" {
		a.Origin = entity.OriginUser
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.clock()
	}
	s.alerts = append(append([]entity.SystemAlert(nil), s.alerts...), a)

	status := entity.ActivityWarning
	if a.Type == entity.AlertError {
		status = entity.ActivityErr
	}
	s.logActivity(entity.ActivityAlert, a.Message, status)
	s.persist(localstore.KeyAlerts, s.alerts)

	snapshot := append([]entity.SystemAlert(nil), s.alerts...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, true)
	return snapshot
}

// ResolveAlert marca una alerta como resuelta. La transición es monótona:
// nunca vuelve a false. Id ausente o alerta ya resuelta es un no-op.
func (s *Store) ResolveAlert(id int64) []entity.SystemAlert {
	s.mu.Lock()
	changed := false
	next := append([]entity.SystemAlert(nil), s.alerts...)
	for i := range next {
		if next[i].ID == id && !next[i].Resolved {
			next[i].Resolved = true
			changed = true
		}
	}
	if changed {
		s.alerts = next
		s.persist(localstore.KeyAlerts, s.alerts)
	}
	snapshot := append([]entity.SystemAlert(nil), s.alerts...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, changed)
	return snapshot
}

// pushAlert inserta una alerta generada por una regla inline al frente del
// feed. Requiere lock; el caller publica al salir de la sección crítica.
func (s *Store) pushAlert(a entity.SystemAlert) {
	if a.ID == 0 {
		a.ID = s.allocAlertID()
	}
	s.alerts = append([]entity.SystemAlert{a}, s.alerts...)
	s.persist(localstore.KeyAlerts, s.alerts)
}

// regenerateDataAlerts reconstruye las alertas de origen auto a partir del
// snapshot actual de vehículos y productos, preservando las de usuario e
// importadas. Mantiene el feed representativo del estado presente en lugar de
// acumular duplicados en cada cambio. Requiere lock.
func (s *Store) regenerateDataAlerts() {
	derived := alerting.DataBased(s.vehicles, s.products, s.clock())

	kept := make([]entity.SystemAlert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.Origin != entity.OriginAuto {
			kept = append(kept, a)
		}
	}
	s.alerts = append(derived, kept...)
	s.persist(localstore.KeyAlerts, s.alerts)
}

// ResyncAlerts reemplaza la colección en memoria por la versión durable.
// Idempotente: cualquier señal (evento de storage, broadcast, poll) puede
// dispararla en cualquier orden y el resultado converge.
func (s *Store) ResyncAlerts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = localstore.Load(s.kv, localstore.KeyAlerts, s.alerts)
}
