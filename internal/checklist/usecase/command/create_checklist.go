package command

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// CreateChecklistCommand represents the command to create a checklist with its initial items
type CreateChecklistCommand struct {
	UserID uint
	Header domain.Header
	Items  []domain.NewItem
}

// CreateChecklistHandler handles create checklist command
type CreateChecklistHandler struct {
	store domain.Store
}

// NewCreateChecklistHandler creates a new create checklist handler
func NewCreateChecklistHandler(store domain.Store) *CreateChecklistHandler {
	return &CreateChecklistHandler{store: store}
}

// Handle inserts the checklist and all of its items in one transaction
func (h *CreateChecklistHandler) Handle(ctx context.Context, cmd CreateChecklistCommand) (*domain.Checklist, error) {
	const op = "checklist.Create"

	if cmd.UserID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "user id is required")
	}
	if cmd.Header.Title == "" {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "title is required")
	}
	travelType, ok := domain.ParseTravelType(string(cmd.Header.TravelType))
	if !ok {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "unknown travel type")
	}
	if cmd.Header.TravelEnd.Before(cmd.Header.TravelStart) {
		return nil, apperrors.New(apperrors.KindInvalidInput, op, "travel end must not be before travel start")
	}
	if err := validateNewItems(op, cmd.Items); err != nil {
		return nil, err
	}

	var created *domain.Checklist
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		// rebuilt on every attempt so a retried transaction never reuses ids
		c := &domain.Checklist{
			UserID:      cmd.UserID,
			Title:       cmd.Header.Title,
			TravelType:  travelType,
			CityID:      cmd.Header.CityID,
			TravelStart: cmd.Header.TravelStart,
			TravelEnd:   cmd.Header.TravelEnd,
			Items:       itemRows(0, cmd.Items),
		}
		if err := tx.InsertChecklist(c); err != nil {
			return err
		}
		if err := tx.IncrementItemClicks(catalogIDs(cmd.Items)); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}

	logger.Info(ctx).
		Uint("checklist_id", created.ID).
		Uint("user_id", created.UserID).
		Int("items", len(created.Items)).
		Msg("Checklist created")

	return created, nil
}

func validateNewItems(op string, items []domain.NewItem) error {
	for _, it := range items {
		if it.ItemID == 0 {
			return apperrors.New(apperrors.KindInvalidInput, op, "item id is required")
		}
		if !it.PackingBag.Valid() {
			return apperrors.New(apperrors.KindInvalidInput, op, fmt.Sprintf("unknown packing bag %q", it.PackingBag))
		}
	}
	return nil
}

func itemRows(checklistID uint, items []domain.NewItem) []domain.ChecklistItem {
	rows := make([]domain.ChecklistItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, domain.ChecklistItem{
			ChecklistID: checklistID,
			ItemID:      it.ItemID,
			PackingBag:  it.PackingBag,
		})
	}
	return rows
}

func catalogIDs(items []domain.NewItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ItemID)
	}
	return ids
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
