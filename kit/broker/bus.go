package broker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

var ErrClosed = errors.New("broker: closed")

type Event interface {
	Name() string
}

type Handler func(ctx context.Context, evt Event) error

// Bus delivers events synchronously to the handlers subscribed to their name.
// A failing or panicking handler never stops delivery to the others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	closed   bool
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

func (b *Bus) Publish(ctx context.Context, evt Event) []error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return []error{ErrClosed}
	}
	hs := append([]Handler(nil), b.handlers[evt.Name()]...)
	b.mu.RUnlock()

	var errs []error
	for i, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("layer=kit component=broker method=Publish event=%s handler_index=%d panic=%v", evt.Name(), i, r)
					errs = append(errs, fmt.Errorf("broker: handler %d panicked: %v", i, r))
				}
			}()
			if err := h(ctx, evt); err != nil {
				log.Printf("layer=kit component=broker method=Publish event=%s handler_index=%d err=%v", evt.Name(), i, err)
				errs = append(errs, err)
			}
		}()
	}
	return errs
}

// Close drops every subscription; later publishes return ErrClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string][]Handler)
}
