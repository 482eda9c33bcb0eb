package command

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// AddItemsCommand represents the command to append items to a checklist
type AddItemsCommand struct {
	ChecklistID uint
	Actor       domain.Actor
	Items       []domain.NewItem
}

// AddItemsHandler handles add items command
type AddItemsHandler struct {
	store domain.Store
}

// NewAddItemsHandler creates a new add items handler
func NewAddItemsHandler(store domain.Store) *AddItemsHandler {
	return &AddItemsHandler{store: store}
}

// Handle bulk-inserts new rows in the requested bags. No duplicate check is made:
// the same catalog item may appear more than once, so a blind retry adds it again.
func (h *AddItemsHandler) Handle(ctx context.Context, cmd AddItemsCommand) ([]domain.ChecklistItem, error) {
	const op = "checklist.AddItems"

	if cmd.ChecklistID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "checklist id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, nil
	}
	if err := validateNewItems(op, cmd.Items); err != nil {
		return nil, err
	}

	var added []domain.ChecklistItem
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		c, err := tx.LockChecklist(cmd.ChecklistID)
		if err != nil {
			return err
		}
		if err := c.CheckMutable(cmd.Actor); err != nil {
			return err
		}

		rows := itemRows(c.ID, cmd.Items)
		if err := tx.InsertItems(rows); err != nil {
			return err
		}
		if err := tx.IncrementItemClicks(catalogIDs(cmd.Items)); err != nil {
			return err
		}
		added = rows
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add items: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", cmd.ChecklistID).
		Int("added", len(added)).
		Msg("Checklist items added")
	return added, nil
}
