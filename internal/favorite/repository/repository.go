package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/database"
)

// GormFavoriteStore implements domain.Store on PostgreSQL
type GormFavoriteStore struct {
	db   *gorm.DB
	opts database.TxOptions
}

// NewGormFavoriteStore creates a new favorite store
func NewGormFavoriteStore(db *gorm.DB, opts database.TxOptions) *GormFavoriteStore {
	return &GormFavoriteStore{db: db, opts: opts}
}

// Atomically runs fn in a transaction, retrying on serialization failures
func (s *GormFavoriteStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	run := func() error {
		return database.RunInTx(ctx, s.db, s.opts, func(tx *gorm.DB) error {
			return fn(gormFavoriteTx{db: tx})
		})
	}

	err := run()
	if database.IsUniqueViolation(err) {
		// a concurrent first favorite won the insert; a rerun finds its row
		err = run()
	}
	return apperrors.Store("favorite.tx", err)
}

func (s *GormFavoriteStore) FindReview(ctx context.Context, reviewID uint) (*domain.ItemReview, error) {
	var r domain.ItemReview
	if err := s.db.WithContext(ctx).First(&r, "review_id = ?", reviewID).Error; err != nil {
		return nil, reviewNotFound(err)
	}
	return &r, nil
}

func (s *GormFavoriteStore) FindActiveFavorite(ctx context.Context, userID, reviewID uint) (*domain.Favorite, error) {
	db := s.db.WithContext(ctx)

	var f domain.Favorite
	err := db.Where("user_id = ? AND review_id = ? AND deleted_at IS NULL", userID, reviewID).
		Take(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Store("favorite.FindActive", err)
	}

	favorites := []domain.Favorite{f}
	if err := attachReviews(db, favorites); err != nil {
		return nil, apperrors.Store("favorite.FindActive", err)
	}
	return &favorites[0], nil
}

func (s *GormFavoriteStore) ListActiveFavorites(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	db := s.db.WithContext(ctx)

	var out []domain.Favorite
	err := db.Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("favorited_at DESC").
		Find(&out).Error
	if err == nil {
		err = attachReviews(db, out)
	}
	return out, apperrors.Store("favorite.ListActive", err)
}

// attachReviews loads the reviews of favorites by review_id, soft-deleted ones included.
// A favorite whose review row is gone keeps a nil Review.
func attachReviews(db *gorm.DB, favorites []domain.Favorite) error {
	if len(favorites) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ReviewID)
	}

	var reviews []domain.ItemReview
	if err := db.Where("review_id IN ?", ids).Find(&reviews).Error; err != nil {
		return err
	}
	byID := make(map[uint]*domain.ItemReview, len(reviews))
	for i := range reviews {
		byID[reviews[i].ID] = &reviews[i]
	}
	for i := range favorites {
		favorites[i].Review = byID[favorites[i].ReviewID]
	}
	return nil
}

type gormFavoriteTx struct {
	db *gorm.DB
}

func (t gormFavoriteTx) LockReview(reviewID uint) (*domain.ItemReview, error) {
	var r domain.ItemReview
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, "review_id = ?", reviewID).Error
	if err != nil {
		return nil, reviewNotFound(err)
	}
	return &r, nil
}

func (t gormFavoriteTx) LockFavorite(userID, reviewID uint) (*domain.Favorite, error) {
	var f domain.Favorite
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Take(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (t gormFavoriteTx) CreateFavorite(f *domain.Favorite) error {
	return t.db.Create(f).Error
}

func (t gormFavoriteTx) RestoreFavorite(id uint, at time.Time) error {
	return t.db.Model(&domain.Favorite{}).
		Where("favorite_id = ?", id).
		Updates(map[string]interface{}{"deleted_at": nil, "favorited_at": at}).Error
}

func (t gormFavoriteTx) SoftDeleteFavorite(id uint, at time.Time) error {
	return t.db.Model(&domain.Favorite{}).
		Where("favorite_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at).Error
}

func (t gormFavoriteTx) SetReviewLikes(reviewID uint, likes int) error {
	return t.db.Model(&domain.ItemReview{}).
		Where("review_id = ?", reviewID).
		Update("likes", likes).Error
}

func reviewNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "favorite.FindReview", "item review not found")
	}
	return apperrors.Store("favorite.FindReview", err)
}
