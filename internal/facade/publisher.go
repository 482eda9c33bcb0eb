package facade

import (
	"context"

	"github.com/tair/packing-checklist/kafka"
)

// EventPublisher emits domain events after a unit of work commits
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.Event) error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, kafka.Event) error { return nil }
