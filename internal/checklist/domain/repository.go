package domain

import (
	"context"
	"time"
)

// Reader is the read side of the checklist store. Lookups that miss return a NOT_FOUND error.
type Reader interface {
	FindByID(ctx context.Context, id uint) (*Checklist, error)
	FindByUser(ctx context.Context, userID uint) ([]Checklist, error)
	FindSharedByUser(ctx context.Context, userID uint) ([]Checklist, error)
	FindSharedByID(ctx context.Context, id uint) (*Checklist, error)
	FindPublicShared(ctx context.Context, sort SharedSort) ([]Checklist, error)
	FindVisibleItems(ctx context.Context, checklistID uint) ([]ChecklistItem, error)
}

// Tx is one unit of work. Lock* methods take a write lock held until commit.
type Tx interface {
	Reader

	LockChecklist(id uint) (*Checklist, error)
	// LockItems returns the rows of checklistID among ids, ordered by id.
	LockItems(checklistID uint, ids []uint) ([]ChecklistItem, error)

	InsertChecklist(c *Checklist) error
	InsertItems(items []ChecklistItem) error
	UpdateSharing(id uint, shared bool) error
	SoftDeleteChecklist(id uint, at time.Time) error
	MarkItemsRemoved(checklistID uint, ids []uint) error
	UpdatePackingBag(itemID uint, bag PackingBag) error
	IncrementItemClicks(itemIDs []uint) error
}

// Store runs units of work against the checklist tables
type Store interface {
	Reader
	// Atomically runs fn in one transaction; any error from fn rolls everything back.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}
