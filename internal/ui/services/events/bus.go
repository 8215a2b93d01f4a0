package events

import (
	"log"
	"runtime/debug"
	"sync"

	"rangepick/internal/domain"
)

// Bus is a synchronous event bus for UI services. Handlers run inline on the
// publisher's goroutine, in subscription order, before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	listeners map[domain.EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[domain.EventType][]Handler),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event domain.DomainEvent) {
	// Copy so a handler may subscribe without deadlocking
	b.mu.RLock()
	handlers := make([]Handler, len(b.listeners[event.Type()]))
	copy(handlers, b.listeners[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.call(handler, event)
	}
}

// call runs one handler, keeping a panicking subscriber from taking down the UI
func (b *Bus) call(h Handler, event domain.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
