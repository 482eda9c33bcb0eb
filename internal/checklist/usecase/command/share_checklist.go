package command

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// ShareChecklistCommand represents the command to share or unshare a checklist
type ShareChecklistCommand struct {
	ChecklistID uint
	Actor       domain.Actor
}

// ShareChecklistHandler handles share checklist command
type ShareChecklistHandler struct {
	store domain.Store
}

// NewShareChecklistHandler creates a new share checklist handler
func NewShareChecklistHandler(store domain.Store) *ShareChecklistHandler {
	return &ShareChecklistHandler{store: store}
}

// Handle flips a private checklist to shared
func (h *ShareChecklistHandler) Handle(ctx context.Context, cmd ShareChecklistCommand) error {
	return setSharing(ctx, h.store, cmd, true)
}

// UnshareChecklistHandler handles unshare checklist command
type UnshareChecklistHandler struct {
	store domain.Store
}

// NewUnshareChecklistHandler creates a new unshare checklist handler
func NewUnshareChecklistHandler(store domain.Store) *UnshareChecklistHandler {
	return &UnshareChecklistHandler{store: store}
}

// Handle flips a shared checklist back to private
func (h *UnshareChecklistHandler) Handle(ctx context.Context, cmd ShareChecklistCommand) error {
	return setSharing(ctx, h.store, cmd, false)
}

func setSharing(ctx context.Context, store domain.Store, cmd ShareChecklistCommand, shared bool) error {
	if cmd.ChecklistID == 0 {
		return apperrors.New(apperrors.KindInvalidInput, "checklist.Share", "checklist id is required")
	}

	err := store.Atomically(ctx, func(tx domain.Tx) error {
		c, err := tx.LockChecklist(cmd.ChecklistID)
		if err != nil {
			return err
		}

		if shared {
			err = c.Share(cmd.Actor)
		} else {
			err = c.Unshare(cmd.Actor)
		}
		if err != nil {
			return err
		}

		return tx.UpdateSharing(c.ID, c.IsShared)
	})
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("checklist_id", cmd.ChecklistID).
			Bool("shared", shared).
			Msg("Sharing change rejected")
		return fmt.Errorf("failed to change sharing: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", cmd.ChecklistID).
		Uint("actor_id", cmd.Actor.UserID).
		Bool("shared", shared).
		Msg("Checklist sharing changed")
	return nil
}
