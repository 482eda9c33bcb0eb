package command

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// RemoveItemsCommand represents the command to logically remove checklist items
type RemoveItemsCommand struct {
	ChecklistID uint
	Actor       domain.Actor
	ItemIDs     []uint
}

// RemoveItemsHandler handles remove items command
type RemoveItemsHandler struct {
	store domain.Store
}

// NewRemoveItemsHandler creates a new remove items handler
func NewRemoveItemsHandler(store domain.Store) *RemoveItemsHandler {
	return &RemoveItemsHandler{store: store}
}

// Handle sets removed_by_user on the given rows. Rows that are already removed are left as is.
func (h *RemoveItemsHandler) Handle(ctx context.Context, cmd RemoveItemsCommand) error {
	const op = "checklist.RemoveItems"

	if cmd.ChecklistID == 0 {
		return apperrors.New(apperrors.KindInvalidInput, op, "checklist id is required")
	}
	ids := uniqueIDs(cmd.ItemIDs)
	if len(ids) == 0 {
		return nil
	}

	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		c, err := tx.LockChecklist(cmd.ChecklistID)
		if err != nil {
			return err
		}
		if err := c.CheckMutable(cmd.Actor); err != nil {
			return err
		}

		rows, err := tx.LockItems(c.ID, ids)
		if err != nil {
			return err
		}
		if len(rows) != len(ids) {
			return apperrors.New(apperrors.KindNotFound, op, "checklist item not found")
		}

		return tx.MarkItemsRemoved(c.ID, ids)
	})
	if err != nil {
		return fmt.Errorf("failed to remove items: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", cmd.ChecklistID).
		Int("removed", len(ids)).
		Msg("Checklist items removed")
	return nil
}
