package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

type favoriteKey struct {
	userID   uint
	reviewID uint
}

// MemoryFavoriteStore is an in-process domain.Store with serialized units of work
type MemoryFavoriteStore struct {
	mu        sync.RWMutex
	reviews   map[uint]domain.ItemReview
	favorites map[favoriteKey]domain.Favorite
	nextID    uint
}

// NewMemoryFavoriteStore creates an empty in-memory store
func NewMemoryFavoriteStore() *MemoryFavoriteStore {
	return &MemoryFavoriteStore{
		reviews:   map[uint]domain.ItemReview{},
		favorites: map[favoriteKey]domain.Favorite{},
	}
}

// SeedReviews adds or replaces reviews
func (s *MemoryFavoriteStore) SeedReviews(reviews ...domain.ItemReview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reviews {
		s.reviews[r.ID] = r
	}
}

// DeleteReview soft-deletes a review the way the review service does
func (s *MemoryFavoriteStore) DeleteReview(reviewID uint, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reviews[reviewID]; ok {
		r.DeletedAt = &at
		s.reviews[reviewID] = r
	}
}

// FavoriteRows returns every favorite row for a review, active or not
func (s *MemoryFavoriteStore) FavoriteRows(reviewID uint) []domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Favorite
	for k, f := range s.favorites {
		if k.reviewID == reviewID {
			out = append(out, f)
		}
	}
	return out
}

func (s *MemoryFavoriteStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperrors.Store("favorite.tx", err)
	}

	tx := &memFavoriteTx{
		reviews:   make(map[uint]domain.ItemReview, len(s.reviews)),
		favorites: make(map[favoriteKey]domain.Favorite, len(s.favorites)),
		nextID:    s.nextID,
	}
	for k, v := range s.reviews {
		tx.reviews[k] = v
	}
	for k, v := range s.favorites {
		tx.favorites[k] = v
	}

	if err := fn(tx); err != nil {
		return apperrors.Store("favorite.tx", err)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Store("favorite.tx", err)
	}

	s.reviews, s.favorites, s.nextID = tx.reviews, tx.favorites, tx.nextID
	return nil
}

func (s *MemoryFavoriteStore) FindReview(_ context.Context, reviewID uint) (*domain.ItemReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[reviewID]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound, "favorite.FindReview", "item review not found")
	}
	return &r, nil
}

func (s *MemoryFavoriteStore) FindActiveFavorite(_ context.Context, userID, reviewID uint) (*domain.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.favorites[favoriteKey{userID, reviewID}]
	if !ok || !f.IsActive() {
		return nil, nil
	}
	s.attachReview(&f)
	return &f, nil
}

func (s *MemoryFavoriteStore) ListActiveFavorites(_ context.Context, userID uint) ([]domain.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Favorite{}
	for k, f := range s.favorites {
		if k.userID == userID && f.IsActive() {
			s.attachReview(&f)
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FavoritedAt.Equal(out[j].FavoritedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].FavoritedAt.After(out[j].FavoritedAt)
	})
	return out, nil
}

func (s *MemoryFavoriteStore) attachReview(f *domain.Favorite) {
	if r, ok := s.reviews[f.ReviewID]; ok {
		f.Review = &r
	}
}

type memFavoriteTx struct {
	reviews   map[uint]domain.ItemReview
	favorites map[favoriteKey]domain.Favorite
	nextID    uint
}

func (t *memFavoriteTx) LockReview(reviewID uint) (*domain.ItemReview, error) {
	r, ok := t.reviews[reviewID]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound, "favorite.FindReview", "item review not found")
	}
	return &r, nil
}

func (t *memFavoriteTx) LockFavorite(userID, reviewID uint) (*domain.Favorite, error) {
	f, ok := t.favorites[favoriteKey{userID, reviewID}]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (t *memFavoriteTx) CreateFavorite(f *domain.Favorite) error {
	key := favoriteKey{f.UserID, f.ReviewID}
	if _, exists := t.favorites[key]; exists {
		return apperrors.New(apperrors.KindStore, "favorite.Create", "duplicate favorite")
	}
	t.nextID++
	f.ID = t.nextID
	stored := *f
	stored.Review = nil
	t.favorites[key] = stored
	return nil
}

func (t *memFavoriteTx) RestoreFavorite(id uint, at time.Time) error {
	for k, f := range t.favorites {
		if f.ID == id {
			f.DeletedAt = nil
			f.FavoritedAt = at
			t.favorites[k] = f
		}
	}
	return nil
}

func (t *memFavoriteTx) SoftDeleteFavorite(id uint, at time.Time) error {
	for k, f := range t.favorites {
		if f.ID == id && f.DeletedAt == nil {
			f.DeletedAt = &at
			t.favorites[k] = f
		}
	}
	return nil
}

func (t *memFavoriteTx) SetReviewLikes(reviewID uint, likes int) error {
	if r, ok := t.reviews[reviewID]; ok {
		r.Likes = likes
		t.reviews[reviewID] = r
	}
	return nil
}
