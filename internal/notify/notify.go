// Package notify propaga los cambios de alertas entre contextos de ejecución.
// Un Hub publica por todos los transportes configurados y entrega a sus
// suscriptores los eventos que llegan de otros contextos. El contrato de
// entrega es deliberadamente débil: sin orden, sin garantía, posiblemente
// duplicada; cada reacción es un resync idempotente contra el almacén durable,
// así que cualquier combinación de señales converge.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// Event señal de cambio publicada entre contextos. El payload es mínimo: el
// receptor no confía en él, relee el almacén durable.
type Event struct {
	Source    string    `json:"source"` // contexto emisor, para filtrar ecos
	Key       string    `json:"key"`    // colección afectada
	Count     int       `json:"count"`  // conteo observado por el emisor
	EmittedAt time.Time `json:"emitted_at"`
}

// Transport canal de propagación conectable. Start registra el callback de
// entrega y arranca los goroutines propios; ambos terminan al cancelar el
// contexto o llamar Close.
type Transport interface {
	Start(ctx context.Context, deliver func(Event)) error
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Hub fan-out de eventos de alertas. Implementa store.AlertNotifier: el store
// lo invoca fuera de su sección crítica tras cada mutación de alertas.
type Hub struct {
	source     string
	log        *logger.Logger
	transports []Transport

	mu      sync.RWMutex
	subs    map[int]func(Event)
	nextSub int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub crea un hub con identidad propia (para filtrar sus propios ecos) y
// los transportes dados. Cero transportes es válido: el poll de reconciliación
// sigue cubriendo la convergencia.
func NewHub(log *logger.Logger, transports ...Transport) *Hub {
	return &Hub{
		source:     uuid.New().String(),
		log:        log,
		transports: transports,
		subs:       make(map[int]func(Event)),
	}
}

// Source identidad del contexto emisor.
func (h *Hub) Source() string { return h.source }

// Start arranca todos los transportes. Un transporte que falla al arrancar se
// registra y se descarta: los demás canales y el poll siguen cubriendo.
func (h *Hub) Start(ctx context.Context) {
	h.ctx, h.cancel = context.WithCancel(ctx)

	alive := h.transports[:0]
	for _, t := range h.transports {
		if err := t.Start(h.ctx, h.dispatch); err != nil {
			h.log.Warn().Err(err).Msg("transporte de notificación no arrancó; se degrada al resto")
			continue
		}
		alive = append(alive, t)
	}
	h.transports = alive
}

// Subscribe registra un callback para eventos de otros contextos. Devuelve la
// función de baja.
func (h *Hub) Subscribe(fn func(Event)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// AlertsChanged publica el cambio por todos los transportes. Fire-and-forget:
// el fallo de un canal se registra y no bloquea la mutación que lo originó.
func (h *Hub) AlertsChanged(count int) {
	ctx := h.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ev := Event{
		Source:    h.source,
		Key:       "systemAlerts",
		Count:     count,
		EmittedAt: time.Now(),
	}
	for _, t := range h.transports {
		go func(t Transport) {
			pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := t.Publish(pubCtx, ev); err != nil {
				h.log.Warn().Err(err).Msg("publicación de cambio de alertas falló")
			}
		}(t)
	}
}

// dispatch entrega a los suscriptores, descartando los ecos propios.
func (h *Hub) dispatch(ev Event) {
	if ev.Source == h.source {
		return
	}
	h.mu.RLock()
	subs := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// Close detiene los transportes y los goroutines del hub.
func (h *Hub) Close() error {
	if h.cancel != nil {
		h.cancel()
	}
	var first error
	for _, t := range h.transports {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
