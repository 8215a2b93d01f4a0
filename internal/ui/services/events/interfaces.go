package events

import "rangepick/internal/domain"

// Handler receives a published event
type Handler func(domain.DomainEvent)

// EventBus is a simple interface for publishing events
type EventBus interface {
	Publish(event domain.DomainEvent)
	Subscribe(eventType domain.EventType, handler Handler)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event domain.DomainEvent)                      {}
func (n *NullBus) Subscribe(eventType domain.EventType, handler Handler) {}
