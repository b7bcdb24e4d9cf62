package domain

import (
	"context"
	"errors"
)

// ErrPublishingEventFailed is returned when one or more subscribers fail.
var ErrPublishingEventFailed = errors.New("publishing event failed")

// EventHandler handles one published event envelope.
type EventHandler func(ctx context.Context, envelope EventEnvelope) error

// EventBus dispatches domain events to registered subscribers.
//
// The bus holds no ambient global state: collaborators receive it explicitly
// by reference. Dispatch is synchronous and in subscription order; handler
// errors are collected and joined, and never abort delivery to the remaining
// subscribers.
//
// Subscribe and Publish must not be called concurrently; the bus is meant to
// be wired up once and then published to from a single owner.
type EventBus struct {
	subscribers    map[string][]EventHandler
	allSubscribers []EventHandler
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Subscribe registers a handler for one event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers a handler for every published event.
func (b *EventBus) SubscribeAll(handler EventHandler) {
	b.allSubscribers = append(b.allSubscribers, handler)
}

// Publish delivers the envelopes to all matching subscribers, in publication
// order. It returns the joined handler errors, if any.
func (b *EventBus) Publish(ctx context.Context, envelopes ...EventEnvelope) error {
	var handlerErrs []error

	for _, envelope := range envelopes {
		eventType := envelope.DomainEvent.EventType()

		for _, handler := range b.subscribers[eventType] {
			if err := handler(ctx, envelope); err != nil {
				handlerErrs = append(handlerErrs, err)
			}
		}

		for _, handler := range b.allSubscribers {
			if err := handler(ctx, envelope); err != nil {
				handlerErrs = append(handlerErrs, err)
			}
		}
	}

	if len(handlerErrs) > 0 {
		return errors.Join(append([]error{ErrPublishingEventFailed}, handlerErrs...)...)
	}

	return nil
}
