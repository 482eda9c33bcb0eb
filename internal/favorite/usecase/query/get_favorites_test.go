package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/internal/favorite/repository"
	"github.com/tair/packing-checklist/internal/favorite/usecase/command"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

func favorite(t *testing.T, store domain.Store, userID, reviewID uint) {
	t.Helper()
	_, err := command.NewSetFavoriteHandler(store).Handle(context.Background(), command.SetFavoriteCommand{
		UserID: userID, ReviewID: reviewID, Desired: true,
	})
	require.NoError(t, err)
}

func TestListFavorites(t *testing.T) {
	store := repository.NewMemoryFavoriteStore()
	store.SeedReviews(
		domain.ItemReview{ID: 7, UserID: 3, ItemID: 11, Title: "Neck pillow"},
		domain.ItemReview{ID: 8, UserID: 4, ItemID: 12, Title: "Packing cubes"},
	)
	favorite(t, store, 42, 7)
	favorite(t, store, 42, 8)
	favorite(t, store, 43, 8)

	got, err := NewListFavoritesHandler(store).Handle(context.Background(), ListFavoritesQuery{UserID: 42})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(8), got[0].ReviewID)
	assert.Equal(t, "Packing cubes", got[0].Title)
	assert.Equal(t, uint(4), got[0].AuthorID)
	assert.Equal(t, 2, got[0].Likes)
	assert.Equal(t, uint(7), got[1].ReviewID)

	empty, err := NewListFavoritesHandler(store).Handle(context.Background(), ListFavoritesQuery{UserID: 99})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListFavoritesFailsOnDeletedReview(t *testing.T) {
	store := repository.NewMemoryFavoriteStore()
	store.SeedReviews(domain.ItemReview{ID: 7}, domain.ItemReview{ID: 8})
	favorite(t, store, 42, 7)
	favorite(t, store, 42, 8)
	store.DeleteReview(7, time.Now())

	_, err := NewListFavoritesHandler(store).Handle(context.Background(), ListFavoritesQuery{UserID: 42})
	assert.ErrorIs(t, err, apperrors.ErrItemReviewDeleted)
}

func TestGetFavorite(t *testing.T) {
	store := repository.NewMemoryFavoriteStore()
	store.SeedReviews(domain.ItemReview{ID: 7, Title: "Neck pillow"}, domain.ItemReview{ID: 8})
	favorite(t, store, 42, 7)
	h := NewGetFavoriteHandler(store)
	ctx := context.Background()

	got, err := h.Handle(ctx, GetFavoriteQuery{UserID: 42, ReviewID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Neck pillow", got.Title)
	assert.Equal(t, 1, got.Likes)

	_, err = h.Handle(ctx, GetFavoriteQuery{UserID: 42, ReviewID: 8})
	assert.ErrorIs(t, err, apperrors.ErrNotFavorite)

	_, err = h.Handle(ctx, GetFavoriteQuery{UserID: 42, ReviewID: 404})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	store.DeleteReview(7, time.Now())
	_, err = h.Handle(ctx, GetFavoriteQuery{UserID: 42, ReviewID: 7})
	assert.ErrorIs(t, err, apperrors.ErrItemReviewDeleted)
}
