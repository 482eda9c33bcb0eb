package command

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// TogglePackingBagCommand represents the command to move items between HAND and HOLD
type TogglePackingBagCommand struct {
	ChecklistID uint
	Actor       domain.Actor
	ItemIDs     []uint
}

// TogglePackingBagHandler handles toggle packing bag command
type TogglePackingBagHandler struct {
	store domain.Store
}

// NewTogglePackingBagHandler creates a new toggle packing bag handler
func NewTogglePackingBagHandler(store domain.Store) *TogglePackingBagHandler {
	return &TogglePackingBagHandler{store: store}
}

// Handle flips each row once. Rows are read under a write lock in the same transaction
// as the update, so overlapping toggles of one row serialize.
func (h *TogglePackingBagHandler) Handle(ctx context.Context, cmd TogglePackingBagCommand) ([]domain.ChecklistItem, error) {
	const op = "checklist.TogglePackingBag"

	if cmd.ChecklistID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "checklist id is required")
	}
	ids := uniqueIDs(cmd.ItemIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	var toggled []domain.ChecklistItem
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

		for i := range rows {
			if !rows[i].IsVisible() {
				return apperrors.New(apperrors.KindNotFound, op, fmt.Sprintf("checklist item %d was removed", rows[i].ID))
			}
			rows[i].PackingBag = rows[i].PackingBag.Flip()
			if err := tx.UpdatePackingBag(rows[i].ID, rows[i].PackingBag); err != nil {
				return err
			}
		}
		toggled = rows
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle packing bag: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", cmd.ChecklistID).
		Int("toggled", len(toggled)).
		Msg("Packing bags toggled")
	return toggled, nil
}
