package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// SetFavoriteCommand represents the command to bring a favorite to the desired state
type SetFavoriteCommand struct {
	UserID   uint
	ReviewID uint
	Desired  bool
}

// SetFavoriteResult is the state after the command plus whether anything was written
type SetFavoriteResult struct {
	domain.Result
	Changed bool
}

// SetFavoriteHandler handles set favorite command
type SetFavoriteHandler struct {
	store domain.Store
}

// NewSetFavoriteHandler creates a new set favorite handler
func NewSetFavoriteHandler(store domain.Store) *SetFavoriteHandler {
	return &SetFavoriteHandler{store: store}
}

// Handle reads the favorite row and the review under write locks, then either returns the
// current likes unchanged (already in the desired state) or flips the row and moves the
// counter by exactly one. The review row is locked first, so every toggle of one review
// serializes and likes always equals the number of active favorites.
func (h *SetFavoriteHandler) Handle(ctx context.Context, cmd SetFavoriteCommand) (SetFavoriteResult, error) {
	const op = "favorite.Set"

	if cmd.UserID == 0 || cmd.ReviewID == 0 {
		return SetFavoriteResult{}, apperrors.New(apperrors.KindInvalidInput, op, "user id and review id are required")
	}

	var res SetFavoriteResult
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		res = SetFavoriteResult{}

		review, err := tx.LockReview(cmd.ReviewID)
		if err != nil {
			return err
		}
		fav, err := tx.LockFavorite(cmd.UserID, cmd.ReviewID)
		if err != nil {
			return err
		}

		if fav.IsActive() == cmd.Desired {
			res.Result = domain.Result{Liked: cmd.Desired, Likes: review.Likes}
			return nil
		}

		now := time.Now()
		likes := review.Likes
		if cmd.Desired {
			if review.IsDeleted() {
				return apperrors.New(apperrors.KindItemReviewDeleted, op, "item review was deleted")
			}
			if fav == nil {
				err = tx.CreateFavorite(&domain.Favorite{UserID: cmd.UserID, ReviewID: cmd.ReviewID, FavoritedAt: now})
			} else {
				err = tx.RestoreFavorite(fav.ID, now)
			}
			likes++
		} else {
			err = tx.SoftDeleteFavorite(fav.ID, now)
			likes = domain.LikesAfterUnfavorite(likes)
		}
		if err != nil {
			return err
		}

		if err := tx.SetReviewLikes(review.ID, likes); err != nil {
			return err
		}
		res = SetFavoriteResult{Result: domain.Result{Liked: cmd.Desired, Likes: likes}, Changed: true}
		return nil
	})
	if err != nil {
		return SetFavoriteResult{}, fmt.Errorf("failed to set favorite: %w", err)
	}

	logger.Info(ctx).
		Uint("user_id", cmd.UserID).
		Uint("review_id", cmd.ReviewID).
		Bool("liked", res.Liked).
		Int("likes", res.Likes).
		Bool("changed", res.Changed).
		Msg("Favorite set")

	return res, nil
}
