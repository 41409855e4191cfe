package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// RedisTransport publica y suscribe eventos por un canal pub/sub de Redis. Es
// el canal entre máquinas; su ausencia degrada a los otros transportes y al
// poll de reconciliación.
type RedisTransport struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
	pubsub  *redis.PubSub
}

// NewRedisTransport crea el transporte sobre un cliente ya configurado y el
// nombre de canal de sincronización.
func NewRedisTransport(client *redis.Client, channel string, log *logger.Logger) *RedisTransport {
	return &RedisTransport{client: client, channel: channel, log: log}
}

func (t *RedisTransport) Start(ctx context.Context, deliver func(Event)) error {
	if err := t.client.Ping(ctx).Err(); err != nil {
		return err
	}
	t.pubsub = t.client.Subscribe(ctx, t.channel)
	if _, err := t.pubsub.Receive(ctx); err != nil {
		t.pubsub.Close()
		return err
	}

	ch := t.pubsub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					t.log.Warn().Err(err).Msg("payload pub/sub ilegible; se descarta")
					continue
				}
				deliver(ev)
			}
		}
	}()
	return nil
}

func (t *RedisTransport) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return t.client.Publish(ctx, t.channel, payload).Err()
}

func (t *RedisTransport) Close() error {
	if t.pubsub != nil {
		return t.pubsub.Close()
	}
	return nil
}
