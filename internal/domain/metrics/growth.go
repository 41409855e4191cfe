package metrics

import (
	"math"
	"time"
)

// Growth calcula el porcentaje de crecimiento mensual de una colección a partir
// de sus fechas de creación: altas del mes en curso sobre el total acumulado
// anterior al día 1 del mes, redondeado.
//
// Ojo: no es un delta mes-contra-mes convencional sino "porcentaje del total
// previo agregado este mes". Se conserva tal cual por compatibilidad con el
// dashboard existente; cambiarlo requiere acuerdo de negocio.
//
// Casos especiales: total previo 0 y altas > 0 -> 100; ambos 0 -> 0.
func Growth(createdAts []time.Time, now time.Time) int {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var currentMonth, priorTotal int
	for _, ts := range createdAts {
		if ts.Year() == now.Year() && ts.Month() == now.Month() {
			currentMonth++
		}
		if ts.Before(monthStart) {
			priorTotal++
		}
	}

	if priorTotal == 0 {
		if currentMonth > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(currentMonth) / float64(priorTotal) * 100))
}
