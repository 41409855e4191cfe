package notify

import (
	"context"
	"time"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// DefaultPollInterval intervalo del poll de reconciliación.
const DefaultPollInterval = 3 * time.Second

// Poller red de seguridad de la sincronización: compara periódicamente el
// conteo de alertas durable contra el de memoria y resincroniza ante
// discrepancia. Garantiza convergencia aunque los tres canales rápidos fallen,
// con el intervalo como cota de la demora.
type Poller struct {
	kv       *localstore.Store
	target   *store.Store
	interval time.Duration
	log      *logger.Logger
	done     chan struct{}
}

// NewPoller interval <= 0 usa el intervalo por defecto de 3s.
func NewPoller(kv *localstore.Store, target *store.Store, interval time.Duration, log *logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		kv:       kv,
		target:   target,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start arranca el ciclo; termina al cancelar el contexto.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}

// tick una pasada de reconciliación. El criterio es el del original: solo el
// conteo; un reemplazo con igual cardinalidad lo recogen los otros canales.
func (p *Poller) tick() {
	durable := localstore.Load(p.kv, localstore.KeyAlerts, []entity.SystemAlert(nil))
	if len(durable) == p.target.AlertCount() {
		return
	}
	p.log.Debug().
		Int("durable", len(durable)).
		Int("memoria", p.target.AlertCount()).
		Msg("discrepancia de alertas detectada; resincronizando")
	p.target.ResyncAlerts()
}

// Wait bloquea hasta que el ciclo terminó (tras cancelar el contexto).
func (p *Poller) Wait() { <-p.done }
