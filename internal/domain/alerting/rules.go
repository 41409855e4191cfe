// Package alerting implementa el motor de reglas de alertas. Son funciones
// puras sobre entidades: el store decide cuándo invocarlas y cómo persistir el
// resultado. Hay dos familias: reglas inline (disparadas dentro de una
// mutación concreta) y la regeneración reactiva DataBased, que reconstruye el
// conjunto de alertas de origen auto cada vez que cambian vehículos o
// productos.
package alerting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
)

// LowInventoryThresholdKg umbral de peso bajo el cual un producto dispara
// alerta de inventario bajo.
var LowInventoryThresholdKg = decimal.NewFromInt(100)

// Ids deterministas para las alertas de origen auto: la regeneración debe
// producir el mismo conjunto en todos los contextos para que la reconciliación
// por conteo converja. Espacios disjuntos por tipo de entidad.
const (
	autoVehicleBase      = 10_000_000_000
	autoProductBase      = 20_000_000_000
	autoMaintenanceID    = 9001
	autoBackupID         = 9002
)

// LowInventory evalúa la regla de inventario bajo para un producto recién
// creado. Devuelve nil si el peso alcanza el umbral.
func LowInventory(p entity.Product, now time.Time) *entity.SystemAlert {
	if p.Weight.GreaterThanOrEqual(LowInventoryThresholdKg) {
		return nil
	}
	return &entity.SystemAlert{
		Type:      entity.AlertWarning,
		Message:   fmt.Sprintf("Low inventory alert for Product %s - %skg total weight", p.SlipNumber, p.Weight),
		Origin:    entity.OriginUser,
		CreatedAt: now,
	}
}

// VehicleNeedsApproval alerta inmediata para un vehículo creado inactivo.
// Es distinta de la alerta de transición: aquí no hubo estado previo.
func VehicleNeedsApproval(v entity.Vehicle, now time.Time) *entity.SystemAlert {
	return &entity.SystemAlert{
		Type:      entity.AlertWarning,
		Message:   fmt.Sprintf("Vehicle %s status is inactive - requires approval for activation", v.Number),
		Origin:    entity.OriginUser,
		CreatedAt: now,
	}
}

// VehicleTransition evalúa la máquina de estados del vehículo (solo el campo
// status). Devuelve nil si no hubo transición.
func VehicleTransition(old, updated entity.Vehicle, now time.Time) *entity.SystemAlert {
	switch {
	case old.Status && !updated.Status:
		return &entity.SystemAlert{
			Type:      entity.AlertWarning,
			Message:   fmt.Sprintf("Vehicle %s status changed to inactive - requires attention", old.Number),
			Origin:    entity.OriginUser,
			CreatedAt: now,
		}
	case !old.Status && updated.Status:
		return &entity.SystemAlert{
			Type:      entity.AlertInfo,
			Message:   fmt.Sprintf("Vehicle %s has been activated and approved", old.Number),
			Origin:    entity.OriginUser,
			CreatedAt: now,
		}
	default:
		return nil
	}
}

// DataBased reconstruye el conjunto de alertas derivadas del snapshot actual:
// una info por vehículo activo, una warning por producto bajo el umbral y dos
// alertas operativas fijas. Todas con origen auto; la llamada que las empalma
// preserva las de usuario e importadas.
func DataBased(vehicles []entity.Vehicle, products []entity.Product, now time.Time) []entity.SystemAlert {
	var out []entity.SystemAlert

	for _, v := range vehicles {
		if !v.Status {
			continue
		}
		out = append(out, entity.SystemAlert{
			ID:        autoVehicleBase + v.ID,
			Type:      entity.AlertInfo,
			Message:   fmt.Sprintf("Vehicle %s has been activated and approved", v.Number),
			Origin:    entity.OriginAuto,
			CreatedAt: now,
		})
	}

	for _, p := range products {
		if p.Weight.GreaterThanOrEqual(LowInventoryThresholdKg) {
			continue
		}
		out = append(out, entity.SystemAlert{
			ID:        autoProductBase + p.ID,
			Type:      entity.AlertWarning,
			Message:   fmt.Sprintf("Low inventory alert for Product %s - %skg total weight", p.SlipNumber, p.Weight),
			Origin:    entity.OriginAuto,
			CreatedAt: now,
		})
	}

	out = append(out,
		entity.SystemAlert{
			ID:        autoMaintenanceID,
			Type:      entity.AlertWarning,
			Message:   "System maintenance scheduled for tonight at 2:00 AM",
			Origin:    entity.OriginAuto,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		entity.SystemAlert{
			ID:        autoBackupID,
			Type:      entity.AlertInfo,
			Message:   "Database backup completed successfully",
			Origin:    entity.OriginAuto,
			CreatedAt: now.Add(-4 * time.Hour),
		},
	)
	return out
}
