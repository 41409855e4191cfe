package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

func TestHub_FiltraSusPropiosEcos(t *testing.T) {
	bus := NewLocalBus()
	hub := NewHub(logger.Nop(), bus.Transport())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub.Start(ctx)
	defer hub.Close()

	received := 0
	hub.Subscribe(func(Event) { received++ })

	// Publicación local: el evento vuelve por el bus con el source del hub.
	hub.AlertsChanged(1)
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, received, "un hub nunca reacciona a su propia publicación")
}

func TestHub_EntregaEntreContextosDelMismoProceso(t *testing.T) {
	bus := NewLocalBus()
	a := NewHub(logger.Nop(), bus.Transport())
	b := NewHub(logger.Nop(), bus.Transport())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	b.Start(ctx)
	defer a.Close()
	defer b.Close()

	got := make(chan Event, 1)
	b.Subscribe(func(ev Event) { got <- ev })

	a.AlertsChanged(7)

	select {
	case ev := <-got:
		assert.Equal(t, a.Source(), ev.Source)
		assert.Equal(t, 7, ev.Count)
		assert.Equal(t, "systemAlerts", ev.Key)
	case <-time.After(time.Second):
		t.Fatal("el otro contexto nunca recibió la señal")
	}
}

func TestHub_UnsubscribeDetieneLaEntrega(t *testing.T) {
	bus := NewLocalBus()
	a := NewHub(logger.Nop(), bus.Transport())
	b := NewHub(logger.Nop(), bus.Transport())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	b.Start(ctx)
	defer a.Close()
	defer b.Close()

	got := make(chan Event, 4)
	unsubscribe := b.Subscribe(func(ev Event) { got <- ev })

	a.AlertsChanged(1)
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("la primera señal debía llegar")
	}

	unsubscribe()
	a.AlertsChanged(2)
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, got, "tras la baja no llegan más eventos")
}

func TestFileTransport_DetectaEscrituraDeOtroProceso(t *testing.T) {
	dir := t.TempDir()
	kv, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)

	transport := NewFileTransport(dir, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Event, 4)
	require.NoError(t, transport.Start(ctx, func(ev Event) { got <- ev }))
	defer transport.Close()

	// Simula la escritura del adaptador de otro contexto.
	err = localstore.Save(kv, localstore.KeyAlerts, []entity.SystemAlert{
		{ID: 1, Type: entity.AlertInfo, Message: "remote write", Origin: entity.OriginUser},
	})
	require.NoError(t, err)

	select {
	case ev := <-got:
		assert.Equal(t, localstore.KeyAlerts, ev.Key)
	case <-time.After(2 * time.Second):
		t.Fatal("el watcher nunca reportó la escritura de alertas")
	}
}

func TestFileTransport_IgnoraOtrasColecciones(t *testing.T) {
	dir := t.TempDir()
	kv, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)

	transport := NewFileTransport(dir, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Event, 4)
	require.NoError(t, transport.Start(ctx, func(ev Event) { got <- ev }))
	defer transport.Close()

	require.NoError(t, localstore.Save(kv, localstore.KeyCities, []entity.City{{ID: 1, Name: "Rajkot"}}))
	time.Sleep(200 * time.Millisecond)

	assert.Empty(t, got, "solo la colección de alertas genera señal")
}

// Dos contextos sobre el mismo directorio, sin ningún canal rápido: el poll
// debe alcanzar la convergencia por sí solo dentro de un intervalo.
func TestPoller_ConvergeSinCanalesRapidos(t *testing.T) {
	dir := t.TempDir()
	kvA, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	kvB, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)

	a := store.New(store.Options{KV: kvA, Log: logger.Nop()})
	b := store.New(store.Options{KV: kvB, Log: logger.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	poller := NewPoller(kvB, b, 20*time.Millisecond, logger.Nop())
	poller.Start(ctx)

	a.AddAlert(entity.SystemAlert{Type: entity.AlertWarning, Message: "peso fuera de rango"})

	require.Eventually(t, func() bool {
		return b.AlertCount() == a.AlertCount()
	}, 2*time.Second, 10*time.Millisecond, "el poll debía reconciliar el conteo")

	cancel()
	poller.Wait()
}

func TestPoller_IntervaloPorDefecto(t *testing.T) {
	dir := t.TempDir()
	kv, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	s := store.New(store.Options{KV: kv, Log: logger.Nop()})

	p := NewPoller(kv, s, 0, logger.Nop())

	assert.Equal(t, DefaultPollInterval, p.interval)
}
