package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLikesAfterUnfavoriteFloorsAtZero(t *testing.T) {
	assert.Equal(t, 2, LikesAfterUnfavorite(3))
	assert.Equal(t, 0, LikesAfterUnfavorite(1))
	assert.Equal(t, 0, LikesAfterUnfavorite(0))
	assert.Equal(t, 0, LikesAfterUnfavorite(-4))
}

func TestFavoriteIsActive(t *testing.T) {
	var missing *Favorite
	assert.False(t, missing.IsActive())

	now := time.Now()
	assert.False(t, (&Favorite{DeletedAt: &now}).IsActive())
	assert.True(t, (&Favorite{}).IsActive())
}

func TestNewSummary(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	favorited := created.Add(time.Hour)

	s := NewSummary(Favorite{
		ReviewID:    7,
		FavoritedAt: favorited,
		Review:      &ItemReview{ID: 7, UserID: 3, ItemID: 11, Title: "Neck pillow", Likes: 4, CreatedAt: created},
	})

	assert.Equal(t, Summary{
		ReviewID:    7,
		Title:       "Neck pillow",
		AuthorID:    3,
		ItemID:      11,
		Likes:       4,
		CreatedAt:   created,
		FavoritedAt: favorited,
	}, s)
}
