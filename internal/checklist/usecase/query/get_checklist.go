package query

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// ListVisibleItemsQuery represents the query for the items of a checklist
type ListVisibleItemsQuery struct {
	ChecklistID uint
}

// ListVisibleItemsHandler handles list visible items query
type ListVisibleItemsHandler struct {
	reader domain.Reader
}

// NewListVisibleItemsHandler creates a new list visible items handler
func NewListVisibleItemsHandler(reader domain.Reader) *ListVisibleItemsHandler {
	return &ListVisibleItemsHandler{reader: reader}
}

// Handle returns rows that are neither removed by the user nor cascade-deleted, by id
func (h *ListVisibleItemsHandler) Handle(ctx context.Context, q ListVisibleItemsQuery) ([]domain.ChecklistItem, error) {
	items, err := h.reader.FindVisibleItems(ctx, q.ChecklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetChecklistQuery represents the query for one checklist of the caller
type GetChecklistQuery struct {
	ChecklistID uint
	Actor       domain.Actor
}

// GetChecklistHandler handles get checklist query
type GetChecklistHandler struct {
	store domain.Store
}

// NewGetChecklistHandler creates a new get checklist handler
func NewGetChecklistHandler(store domain.Store) *GetChecklistHandler {
	return &GetChecklistHandler{store: store}
}

// Handle returns an active checklist with its visible items. Only the owner or an admin may read it.
// The checklist and its items are read in one transaction.
func (h *GetChecklistHandler) Handle(ctx context.Context, q GetChecklistQuery) (*domain.Checklist, error) {
	const op = "checklist.Get"

	var found *domain.Checklist
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		c, err := tx.FindByID(ctx, q.ChecklistID)
		if err != nil {
			return err
		}
		if c.IsDeleted() {
			return apperrors.New(apperrors.KindNotFound, op, "checklist not found")
		}
		if !c.CanBeMutatedBy(q.Actor) {
			return apperrors.New(apperrors.KindForbidden, op, "only the owner or an admin can view this checklist")
		}

		if c.Items, err = NewListVisibleItemsHandler(tx).Handle(ctx, ListVisibleItemsQuery{ChecklistID: c.ID}); err != nil {
			return err
		}
		found = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return found, nil
}

// GetSharedChecklistQuery represents the public query for a shared checklist
type GetSharedChecklistQuery struct {
	ChecklistID uint
}

// GetSharedChecklistHandler handles get shared checklist query
type GetSharedChecklistHandler struct {
	store domain.Store
}

// NewGetSharedChecklistHandler creates a new get shared checklist handler
func NewGetSharedChecklistHandler(store domain.Store) *GetSharedChecklistHandler {
	return &GetSharedChecklistHandler{store: store}
}

// Handle returns a shared, non-deleted checklist with its visible items. No ownership check.
func (h *GetSharedChecklistHandler) Handle(ctx context.Context, q GetSharedChecklistQuery) (*domain.Checklist, error) {
	var found *domain.Checklist
	err := h.store.Atomically(ctx, func(tx domain.Tx) error {
		c, err := tx.FindSharedByID(ctx, q.ChecklistID)
		if err != nil {
			return err
		}
		if c.Items, err = NewListVisibleItemsHandler(tx).Handle(ctx, ListVisibleItemsQuery{ChecklistID: c.ID}); err != nil {
			return err
		}
		found = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get shared checklist: %w", err)
	}
	return found, nil
}
