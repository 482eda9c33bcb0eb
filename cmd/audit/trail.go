package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/packing-checklist/kafka"
	"github.com/tair/packing-checklist/pkg/logger"
)

// auditTrail writes one structured log line per domain event and counts them by type
type auditTrail struct {
	events *prometheus.CounterVec
}

func newAuditTrail(reg prometheus.Registerer) *auditTrail {
	t := &auditTrail{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checklist_audit_events_total",
				Help: "Domain events consumed by the audit trail",
			},
			[]string{"event_type"},
		),
	}
	reg.MustRegister(t.events)
	return t
}

func (t *auditTrail) Handle(ctx context.Context, e kafka.Event) error {
	if e.EventID == "" {
		return fmt.Errorf("event %s has no id", e.EventType)
	}

	entry := logger.Info(ctx).
		Str("event_id", e.EventID).
		Str("event_type", e.EventType).
		Uint("user_id", e.UserID).
		Time("occurred_at", e.Timestamp)

	switch e.EventType {
	case kafka.EventTypeFavoriteToggled:
		entry = entry.Uint("review_id", e.ReviewID).Bool("liked", e.Liked).Int("likes", e.Likes)
	case kafka.EventTypeChecklistCreated, kafka.EventTypeChecklistEdited:
		entry = entry.Uint("checklist_id", e.ChecklistID).Int("items", e.Items)
	default:
		entry = entry.Uint("checklist_id", e.ChecklistID)
	}
	entry.Msg("Audit event")

	t.events.WithLabelValues(e.EventType).Inc()
	return nil
}
