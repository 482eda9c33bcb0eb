package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/tracing"
)

var tracer = otel.Tracer("checklist-repository")

// ChecklistStoreWithTracing wraps a domain.Store with spans
type ChecklistStoreWithTracing struct {
	next domain.Store
}

// NewChecklistStoreWithTracing decorates next with tracing
func NewChecklistStoreWithTracing(next domain.Store) *ChecklistStoreWithTracing {
	return &ChecklistStoreWithTracing{next: next}
}

func (s *ChecklistStoreWithTracing) Atomically(ctx context.Context, fn func(tx domain.Tx) error) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Atomically")
	defer func() { tracing.End(span, err) }()

	return s.next.Atomically(ctx, fn)
}

func (s *ChecklistStoreWithTracing) FindByID(ctx context.Context, id uint) (c *domain.Checklist, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("checklist.id", int(id))),
	)
	defer func() { tracing.End(span, err) }()

	return s.next.FindByID(ctx, id)
}

func (s *ChecklistStoreWithTracing) FindByUser(ctx context.Context, userID uint) (out []domain.Checklist, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer func() { tracing.End(span, err, attribute.Int("checklist.count", len(out))) }()

	return s.next.FindByUser(ctx, userID)
}

func (s *ChecklistStoreWithTracing) FindSharedByUser(ctx context.Context, userID uint) (out []domain.Checklist, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindSharedByUser",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer func() { tracing.End(span, err, attribute.Int("checklist.count", len(out))) }()

	return s.next.FindSharedByUser(ctx, userID)
}

func (s *ChecklistStoreWithTracing) FindSharedByID(ctx context.Context, id uint) (c *domain.Checklist, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindSharedByID",
		trace.WithAttributes(attribute.Int("checklist.id", int(id))),
	)
	defer func() { tracing.End(span, err) }()

	return s.next.FindSharedByID(ctx, id)
}

func (s *ChecklistStoreWithTracing) FindPublicShared(ctx context.Context, sort domain.SharedSort) (out []domain.Checklist, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindPublicShared",
		trace.WithAttributes(attribute.String("checklist.sort", string(sort))),
	)
	defer func() { tracing.End(span, err, attribute.Int("checklist.count", len(out))) }()

	return s.next.FindPublicShared(ctx, sort)
}

func (s *ChecklistStoreWithTracing) FindVisibleItems(ctx context.Context, checklistID uint) (out []domain.ChecklistItem, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindVisibleItems",
		trace.WithAttributes(attribute.Int("checklist.id", int(checklistID))),
	)
	defer func() { tracing.End(span, err, attribute.Int("item.count", len(out))) }()

	return s.next.FindVisibleItems(ctx, checklistID)
}
