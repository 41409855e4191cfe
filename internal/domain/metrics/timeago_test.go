package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/groundnut-admin/internal/domain/metrics"
)

func TestTimeAgo_Rangos(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"menos de un minuto", now.Add(-30 * time.Second), "Just now"},
		{"un minuto, singular", now.Add(-90 * time.Second), "1 minute ago"},
		{"varios minutos", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"una hora, singular", now.Add(-75 * time.Minute), "1 hour ago"},
		{"varias horas", now.Add(-125 * time.Minute), "2 hours ago"},
		{"un día, singular", now.Add(-25 * time.Hour), "1 day ago"},
		{"varios días", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"borde de diez días", now.Add(-10 * 24 * time.Hour), "10 days ago"},
		{"más de diez días", now.Add(-11 * 24 * time.Hour), "More than 10 days ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, metrics.TimeAgo(tc.ts, now))
		})
	}
}
