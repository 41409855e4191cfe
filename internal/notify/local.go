package notify

import (
	"context"
	"sync"
)

// LocalBus bus en memoria compartido por los hubs de un mismo proceso. Es el
// canal más barato de los tres: entrega síncrona, sin serialización. Cada hub
// se conecta con su propio Transport sobre el bus común.
type LocalBus struct {
	mu   sync.RWMutex
	subs map[int]func(Event)
	next int
}

// NewLocalBus crea un bus vacío.
func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[int]func(Event))}
}

func (b *LocalBus) attach(deliver func(Event)) (detach func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = deliver
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *LocalBus) broadcast(ev Event) {
	b.mu.RLock()
	subs := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// Transport devuelve un transporte conectado al bus. El eco propio llega de
// vuelta y lo filtra el hub por source.
func (b *LocalBus) Transport() Transport {
	return &localTransport{bus: b}
}

type localTransport struct {
	bus    *LocalBus
	detach func()
	once   sync.Once
}

func (t *localTransport) Start(ctx context.Context, deliver func(Event)) error {
	t.detach = t.bus.attach(deliver)
	go func() {
		<-ctx.Done()
		t.stop()
	}()
	return nil
}

func (t *localTransport) Publish(_ context.Context, ev Event) error {
	t.bus.broadcast(ev)
	return nil
}

func (t *localTransport) Close() error {
	t.stop()
	return nil
}

func (t *localTransport) stop() {
	t.once.Do(func() {
		if t.detach != nil {
			t.detach()
		}
	})
}
