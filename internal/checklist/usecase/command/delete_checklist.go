package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// DeleteChecklistCommand represents the command to soft-delete a checklist
type DeleteChecklistCommand struct {
	ChecklistID uint
	Actor       domain.Actor
}

// DeleteChecklistHandler handles delete checklist command
type DeleteChecklistHandler struct {
	store domain.Store
}

// NewDeleteChecklistHandler creates a new delete checklist handler
func NewDeleteChecklistHandler(store domain.Store) *DeleteChecklistHandler {
	return &DeleteChecklistHandler{store: store}
}

// Handle stamps deleted_at on the checklist and every one of its items in one transaction.
// Deleting an already deleted checklist succeeds without touching any row; the returned
// flag reports whether this call performed the deletion.
func (h *DeleteChecklistHandler) Handle(ctx context.Context, cmd DeleteChecklistCommand) (bool, error) {
	if cmd.ChecklistID == 0 {
		return false, apperrors.New(apperrors.KindInvalidInput, "checklist.Delete", "checklist id is required")
	}

	var deleted bool
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		deleted = false

		c, err := tx.LockChecklist(cmd.ChecklistID)
		if err != nil {
			return err
		}
		if !c.CanBeMutatedBy(cmd.Actor) {
			return apperrors.New(apperrors.KindForbidden, "checklist.Delete", "only the owner or an admin can delete this checklist")
		}
		if c.IsDeleted() {
			return nil
		}

		if err := tx.SoftDeleteChecklist(c.ID, time.Now()); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete checklist: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", cmd.ChecklistID).
		Uint("actor_id", cmd.Actor.UserID).
		Bool("already_deleted", !deleted).
		Msg("Checklist deleted")

	return deleted, nil
}
