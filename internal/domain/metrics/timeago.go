// Package metrics contiene las funciones puras de derivación del dashboard:
// formato relativo de tiempo, crecimiento mensual, ingresos y agregación
// regional. Ninguna función guarda estado; el reloj se recibe como parámetro
// para que los tests sean deterministas.
package metrics

import (
	"fmt"
	"time"
)

// TimeAgo formatea un timestamp como tiempo relativo respecto a now.
// Rangos: <1 min "Just now"; <60 min en minutos; <24 h en horas; <=10 días en
// días; más allá, una cadena fija. El plural solo aplica cuando N > 1.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case diff < time.Minute:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days <= 10:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return "More than 10 days ago"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
