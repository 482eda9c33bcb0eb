package domain

import (
	"time"
)

// ItemReview is a user review of a catalog item. Likes mirrors the number of active favorites.
type ItemReview struct {
	ID        uint       `json:"review_id" gorm:"column:review_id;primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	ItemID    uint       `json:"item_id" gorm:"not null;index"`
	Title     string     `json:"title" gorm:"size:100;not null"`
	Content   string     `json:"content" gorm:"type:text"`
	Image     *string    `json:"image,omitempty" gorm:"size:255"`
	Likes     int        `json:"likes" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name
func (ItemReview) TableName() string {
	return "item_reviews"
}

// IsDeleted reports whether the review was soft-deleted
func (r *ItemReview) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Favorite is the single favorite record a user may hold for a review.
// Unfavorite and refavorite toggle DeletedAt instead of deleting the row.
// Review is attached by the store on reads and is never persisted.
type Favorite struct {
	ID          uint        `json:"favorite_id" gorm:"column:favorite_id;primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_review"`
	ReviewID    uint        `json:"review_id" gorm:"not null;uniqueIndex:idx_favorites_user_review;index"`
	FavoritedAt time.Time   `json:"favorited_at" gorm:"not null"`
	DeletedAt   *time.Time  `json:"deleted_at,omitempty" gorm:"index"`
	Review      *ItemReview `json:"review,omitempty" gorm:"-"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "user_favorite_item_reviews"
}

// IsActive reports whether f exists and is not soft-deleted
func (f *Favorite) IsActive() bool {
	return f != nil && f.DeletedAt == nil
}

// Result is the state after a set favorite call
type Result struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// Summary is a favorite as shown to its owner
type Summary struct {
	ReviewID    uint      `json:"review_id"`
	Title       string    `json:"title"`
	AuthorID    uint      `json:"author_id"`
	ItemID      uint      `json:"item_id"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	FavoritedAt time.Time `json:"favorited_at"`
}

// NewSummary flattens an active favorite and its review
func NewSummary(f Favorite) Summary {
	s := Summary{ReviewID: f.ReviewID, FavoritedAt: f.FavoritedAt}
	if r := f.Review; r != nil {
		s.Title = r.Title
		s.AuthorID = r.UserID
		s.ItemID = r.ItemID
		s.Likes = r.Likes
		s.CreatedAt = r.CreatedAt
	}
	return s
}

// LikesAfterUnfavorite decrements likes with a floor of zero
func LikesAfterUnfavorite(likes int) int {
	if likes <= 0 {
		return 0
	}
	return likes - 1
}
