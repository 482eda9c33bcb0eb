package query

import (
	"context"
	"fmt"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// ListMyChecklistsQuery represents the query for a user's active checklists
type ListMyChecklistsQuery struct {
	UserID uint
}

// ListMyChecklistsHandler handles list my checklists query
type ListMyChecklistsHandler struct {
	reader domain.Reader
}

// NewListMyChecklistsHandler creates a new list my checklists handler
func NewListMyChecklistsHandler(reader domain.Reader) *ListMyChecklistsHandler {
	return &ListMyChecklistsHandler{reader: reader}
}

// Handle returns the user's non-deleted checklists, newest first
func (h *ListMyChecklistsHandler) Handle(ctx context.Context, q ListMyChecklistsQuery) ([]domain.Checklist, error) {
	if q.UserID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "checklist.ListMine", "user id is required")
	}

	checklists, err := h.reader.FindByUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	return checklists, nil
}

// ListSharedChecklistsQuery represents the query for a user's shared checklists
type ListSharedChecklistsQuery struct {
	UserID uint
}

// ListSharedChecklistsHandler handles list shared checklists query
type ListSharedChecklistsHandler struct {
	reader domain.Reader
}

// NewListSharedChecklistsHandler creates a new list shared checklists handler
func NewListSharedChecklistsHandler(reader domain.Reader) *ListSharedChecklistsHandler {
	return &ListSharedChecklistsHandler{reader: reader}
}

// Handle returns the user's shared, non-deleted checklists, newest first
func (h *ListSharedChecklistsHandler) Handle(ctx context.Context, q ListSharedChecklistsQuery) ([]domain.Checklist, error) {
	if q.UserID == 0 {
		return nil, apperrors.New(apperrors.KindInvalidInput, "checklist.ListShared", "user id is required")
	}

	checklists, err := h.reader.FindSharedByUser(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared checklists: %w", err)
	}
	return checklists, nil
}

// ListPublicSharedQuery represents the query for every shared checklist
type ListPublicSharedQuery struct {
	Sort string
}

// ListPublicSharedHandler handles list public shared query
type ListPublicSharedHandler struct {
	reader domain.Reader
}

// NewListPublicSharedHandler creates a new list public shared handler
func NewListPublicSharedHandler(reader domain.Reader) *ListPublicSharedHandler {
	return &ListPublicSharedHandler{reader: reader}
}

// Handle lists shared checklists by recency (default) or by likes
func (h *ListPublicSharedHandler) Handle(ctx context.Context, q ListPublicSharedQuery) ([]domain.Checklist, error) {
	sort := domain.SharedSort(q.Sort)
	switch sort {
	case "":
		sort = domain.SortRecent
	case domain.SortRecent, domain.SortLikes:
	default:
		return nil, apperrors.New(apperrors.KindInvalidInput, "checklist.ListPublicShared", fmt.Sprintf("unknown sort %q", q.Sort))
	}

	checklists, err := h.reader.FindPublicShared(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list public checklists: %w", err)
	}
	return checklists, nil
}
