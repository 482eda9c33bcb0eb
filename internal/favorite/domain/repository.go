package domain

import (
	"context"
	"time"
)

// Reader is the read side of the favorite store
type Reader interface {
	// FindReview returns the review including soft-deleted ones, or NOT_FOUND.
	FindReview(ctx context.Context, reviewID uint) (*ItemReview, error)
	// FindActiveFavorite returns the active favorite with its review preloaded, or nil.
	FindActiveFavorite(ctx context.Context, userID, reviewID uint) (*Favorite, error)
	// ListActiveFavorites returns active favorites with reviews preloaded, newest favorite first.
	ListActiveFavorites(ctx context.Context, userID uint) ([]Favorite, error)
}

// Tx is one unit of work. Lock* methods take a write lock held until commit.
type Tx interface {
	LockReview(reviewID uint) (*ItemReview, error)
	// LockFavorite returns the (user, review) row whether active or not, or nil when none exists.
	LockFavorite(userID, reviewID uint) (*Favorite, error)

	CreateFavorite(f *Favorite) error
	RestoreFavorite(id uint, at time.Time) error
	SoftDeleteFavorite(id uint, at time.Time) error
	SetReviewLikes(reviewID uint, likes int) error
}

// Store runs units of work against the favorite tables
type Store interface {
	Reader
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}
