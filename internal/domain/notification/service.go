package notification

import (
	"context"
)

// Publisher is what the domain services need to announce changes.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Service defines the dashboard notification service interface
type Service interface {
	Publisher

	// SSE subscription
	Subscribe(ctx context.Context, subscriberID string) (<-chan Event, func())
	TotalSubscribers() int

	// Lifecycle
	Stop()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
