package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/tracing"
)

var tracer = otel.Tracer("favorite-repository")

// FavoriteStoreWithTracing wraps a domain.Store with spans
type FavoriteStoreWithTracing struct {
	next domain.Store
}

// NewFavoriteStoreWithTracing decorates next with tracing
func NewFavoriteStoreWithTracing(next domain.Store) *FavoriteStoreWithTracing {
	return &FavoriteStoreWithTracing{next: next}
}

func (s *FavoriteStoreWithTracing) Atomically(ctx context.Context, fn func(tx domain.Tx) error) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Atomically")
	defer func() { tracing.End(span, err) }()

	return s.next.Atomically(ctx, fn)
}

func (s *FavoriteStoreWithTracing) FindReview(ctx context.Context, reviewID uint) (r *domain.ItemReview, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindReview",
		trace.WithAttributes(attribute.Int("review.id", int(reviewID))),
	)
	defer func() { tracing.End(span, err) }()

	return s.next.FindReview(ctx, reviewID)
}

func (s *FavoriteStoreWithTracing) FindActiveFavorite(ctx context.Context, userID, reviewID uint) (f *domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindActiveFavorite",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("review.id", int(reviewID)),
		),
	)
	defer func() { tracing.End(span, err, attribute.Bool("favorite.active", f != nil)) }()

	return s.next.FindActiveFavorite(ctx, userID, reviewID)
}

func (s *FavoriteStoreWithTracing) ListActiveFavorites(ctx context.Context, userID uint) (out []domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.ListActiveFavorites",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer func() { tracing.End(span, err, attribute.Int("favorite.count", len(out))) }()

	return s.next.ListActiveFavorites(ctx, userID)
}
