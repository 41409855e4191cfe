package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// Listener suscripción LISTEN/NOTIFY sobre una conexión dedicada del pool. El
// callback avisa que algo cambió en el remoto; el caller decide qué releer
// (normalmente programa un re-import). La conexión caída se reintenta con
// backoff fijo hasta cancelar el contexto.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	log     *logger.Logger
	done    chan struct{}
}

// NewListener canal típico: "alerts_changed".
func NewListener(pool *pgxpool.Pool, channel string, log *logger.Logger) *Listener {
	return &Listener{
		pool:    pool,
		channel: channel,
		log:     log,
		done:    make(chan struct{}),
	}
}

// Start arranca la escucha; onNotify recibe el payload de cada notificación.
// Devuelve la función de baja, que bloquea hasta soltar la conexión.
func (l *Listener) Start(ctx context.Context, onNotify func(payload string)) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer close(l.done)
		for {
			if err := l.listen(ctx, onNotify); err != nil {
				if ctx.Err() != nil {
					return
				}
				l.log.Warn().Err(err).Str("canal", l.channel).Msg("escucha interrumpida; reintentando")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
		}
	}()

	return func() {
		cancel()
		<-l.done
	}
}

func (l *Listener) listen(ctx context.Context, onNotify func(payload string)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return err
	}
	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		onNotify(notification.Payload)
	}
}
