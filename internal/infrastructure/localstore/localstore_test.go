package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

func newStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.New(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestLoad_ClaveAusenteDevuelveFallback(t *testing.T) {
	s := newStore(t)

	fallback := []entity.City{{ID: 1, Name: "Chennai"}}
	got := localstore.Load(s, localstore.KeyCities, fallback)
	assert.Equal(t, fallback, got)
}

func TestRoundTrip_SinPerdida(t *testing.T) {
	s := newStore(t)

	cities := []entity.City{
		{ID: 1, Name: "Chennai", Status: true, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Madurai", Status: false, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, localstore.Save(s, localstore.KeyCities, cities))

	got := localstore.Load(s, localstore.KeyCities, []entity.City(nil))
	assert.Equal(t, cities, got)

	// Guardar el valor sin cambios produce exactamente el mismo texto almacenado
	before, err := os.ReadFile(filepath.Join(s.Dir(), localstore.FileFor(localstore.KeyCities)))
	require.NoError(t, err)
	require.NoError(t, localstore.Save(s, localstore.KeyCities, got))
	after, err := os.ReadFile(filepath.Join(s.Dir(), localstore.FileFor(localstore.KeyCities)))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestLoad_ValorCorruptoDegradaAFallback(t *testing.T) {
	s := newStore(t)

	path := filepath.Join(s.Dir(), localstore.FileFor(localstore.KeyAlerts))
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	got := localstore.Load(s, localstore.KeyAlerts, []entity.SystemAlert{})
	assert.Empty(t, got, "ante corrupción se degrada al fallback, nunca panic")
}

func TestSave_EscrituraAtomicaVisibleParaOtroAdaptador(t *testing.T) {
	dir := t.TempDir()
	a, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	b, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)

	alerts := []entity.SystemAlert{{ID: 1, Type: entity.AlertInfo, Message: "ok", Origin: entity.OriginUser}}
	require.NoError(t, localstore.Save(a, localstore.KeyAlerts, alerts))

	got := localstore.Load(b, localstore.KeyAlerts, []entity.SystemAlert(nil))
	assert.Equal(t, alerts, got, "dos adaptadores sobre el mismo directorio comparten estado")

	// No deben quedar temporales tras publicar
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, byte('.'), e.Name()[0], "temporal residual: %s", e.Name())
	}
}
