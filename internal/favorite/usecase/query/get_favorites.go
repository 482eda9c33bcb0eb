package query

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// ListFavoritesQuery represents the query for a user's favorites
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles list favorites query
type ListFavoritesHandler struct {
	reader domain.Reader
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(reader domain.Reader) *ListFavoritesHandler {
	return &ListFavoritesHandler{reader: reader}
}

// Handle returns active favorites, newest first. An active favorite whose review was
// deleted fails the whole call with ITEM_REVIEW_DELETED instead of being served.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Summary, error) {
	if q.UserID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "favorite.List", "user id is required")
	}

	favorites, err := h.reader.ListActiveFavorites(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	out := make([]domain.Summary, 0, len(favorites))
	for _, f := range favorites {
		if err := checkReview(f); err != nil {
			return nil, err
		}
		out = append(out, domain.NewSummary(f))
	}
	return out, nil
}

// GetFavoriteQuery represents the query for one favorite of a user
type GetFavoriteQuery struct {
	UserID   uint
	ReviewID uint
}

// GetFavoriteHandler handles get favorite query
type GetFavoriteHandler struct {
	reader domain.Reader
}

// NewGetFavoriteHandler creates a new get favorite handler
func NewGetFavoriteHandler(reader domain.Reader) *GetFavoriteHandler {
	return &GetFavoriteHandler{reader: reader}
}

// Handle returns the favorite for a review, NOT_FAVORITE when the user has no active
// favorite on it, and NOT_FOUND when the review does not exist.
func (h *GetFavoriteHandler) Handle(ctx context.Context, q GetFavoriteQuery) (*domain.Summary, error) {
	f, err := h.reader.FindActiveFavorite(ctx, q.UserID, q.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite: %w", err)
	}
	if f == nil {
		if _, err := h.reader.FindReview(ctx, q.ReviewID); err != nil {
			return nil, err
		}
		return nil, apperrors.New(apperrors.KindNotFavorite, "favorite.Get", "review is not in favorites")
	}
	if err := checkReview(*f); err != nil {
		return nil, err
	}

	s := domain.NewSummary(*f)
	return &s, nil
}

func checkReview(f domain.Favorite) error {
	if f.Review == nil {
		return apperrors.New(apperrors.KindNotFound, "favorite.Review", fmt.Sprintf("item review %d not found", f.ReviewID))
	}
	if f.Review.IsDeleted() {
		return apperrors.New(apperrors.KindItemReviewDeleted, "favorite.Review", fmt.Sprintf("item review %d was deleted", f.ReviewID))
	}
	return nil
}
