package store

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/alerting"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// VehiclePatch campos opcionales para actualizar un vehículo.
type VehiclePatch struct {
	Number      *string
	CompanyID   *int64
	CompanyName *string
	Status      *bool
}

// AddVehicle agrega un vehículo. Debe referenciar una empresa existente.
// Un vehículo creado inactivo dispara de inmediato la alerta de aprobación
// pendiente, sin esperar transición alguna.
func (s *Store) AddVehicle(v entity.Vehicle) ([]entity.Vehicle, error) {
	if strings.TrimSpace(v.Number) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	company, ok := s.companyByID(v.CompanyID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrMissingReference
	}
	if v.CompanyName == "" {
		v.CompanyName = company.Name
	}
	if v.ID == 0 {
		v.ID = s.allocID()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.clock()
	}
	s.vehicles = append(append([]entity.Vehicle(nil), s.vehicles...), v)
	s.persist(localstore.KeyVehicles, s.vehicles)
	s.logActivity(entity.ActivityVehicle, fmt.Sprintf("Vehicle %s registered", v.Number), entity.ActivitySuccess)

	if !v.Status {
		s.pushAlert(*alerting.VehicleNeedsApproval(v, s.clock()))
	}
	s.regenerateDataAlerts()

	snapshot := append([]entity.Vehicle(nil), s.vehicles...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, true)
	return snapshot, nil
}

// UpdateVehicle aplica un patch parcial. Las transiciones de status emiten la
// alerta correspondiente de la máquina de estados. Id ausente es un no-op.
func (s *Store) UpdateVehicle(id int64, patch VehiclePatch) []entity.Vehicle {
	s.mu.Lock()
	alertsTouched := false
	next := append([]entity.Vehicle(nil), s.vehicles...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		old := next[i]
		v := &next[i]
		if patch.Number != nil {
			v.Number = *patch.Number
		}
		if patch.CompanyID != nil {
			v.CompanyID = *patch.CompanyID
		}
		if patch.CompanyName != nil {
			v.CompanyName = *patch.CompanyName
		}
		if patch.Status != nil {
			v.Status = *patch.Status
		}
		s.vehicles = next
		s.persist(localstore.KeyVehicles, s.vehicles)
		s.logActivity(entity.ActivityVehicle, fmt.Sprintf("Vehicle %s information updated", v.Number), entity.ActivityInfo)

		if a := alerting.VehicleTransition(old, *v, s.clock()); a != nil {
			s.pushAlert(*a)
		}
		s.regenerateDataAlerts()
		alertsTouched = true
		break
	}
	snapshot := append([]entity.Vehicle(nil), s.vehicles...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, alertsTouched)
	return snapshot
}

// DeleteVehicle elimina por id y regenera las alertas derivadas (el vehículo
// desaparece del conjunto de origen auto).
func (s *Store) DeleteVehicle(id int64) []entity.Vehicle {
	s.mu.Lock()
	alertsTouched := false
	next := make([]entity.Vehicle, 0, len(s.vehicles))
	var deleted *entity.Vehicle
	for _, v := range s.vehicles {
		if v.ID == id {
			removed := v
			deleted = &removed
			continue
		}
		next = append(next, v)
	}
	if deleted != nil {
		s.vehicles = next
		s.persist(localstore.KeyVehicles, s.vehicles)
		s.logActivity(entity.ActivityVehicle, fmt.Sprintf("Vehicle %s has been deleted", deleted.Number), entity.ActivityWarning)
		s.regenerateDataAlerts()
		alertsTouched = true
	}
	snapshot := append([]entity.Vehicle(nil), s.vehicles...)
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, alertsTouched)
	return snapshot
}

func (s *Store) vehicleByID(id int64) (entity.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return entity.Vehicle{}, false
}
