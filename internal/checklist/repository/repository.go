package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/database"
)

const itemBatchSize = 100

// GormChecklistStore implements domain.Store on PostgreSQL
type GormChecklistStore struct {
	gormChecklistTx
	opts database.TxOptions
}

// NewGormChecklistStore creates a new checklist store
func NewGormChecklistStore(db *gorm.DB, opts database.TxOptions) *GormChecklistStore {
	return &GormChecklistStore{gormChecklistTx: gormChecklistTx{db: db}, opts: opts}
}

// Atomically runs fn in a transaction, retrying on serialization failures
func (s *GormChecklistStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	err := database.RunInTx(ctx, s.db, s.opts, func(tx *gorm.DB) error {
		return fn(gormChecklistTx{db: tx})
	})
	return apperrors.Store("checklist.tx", err)
}

// gormChecklistTx serves both the plain reader and the in-transaction handle.
type gormChecklistTx struct {
	db *gorm.DB
}

func (r gormChecklistTx) FindByID(ctx context.Context, id uint) (*domain.Checklist, error) {
	var c domain.Checklist
	if err := r.db.WithContext(ctx).First(&c, "checklist_id = ?", id).Error; err != nil {
		return nil, notFound("checklist.FindByID", "checklist not found", err)
	}
	return &c, nil
}

func (r gormChecklistTx) FindByUser(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	var out []domain.Checklist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, apperrors.Store("checklist.FindByUser", err)
}

func (r gormChecklistTx) FindSharedByUser(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	var out []domain.Checklist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_shared = ? AND deleted_at IS NULL", userID, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, apperrors.Store("checklist.FindSharedByUser", err)
}

func (r gormChecklistTx) FindSharedByID(ctx context.Context, id uint) (*domain.Checklist, error) {
	var c domain.Checklist
	err := r.db.WithContext(ctx).
		Where("checklist_id = ? AND is_shared = ? AND deleted_at IS NULL", id, true).
		First(&c).Error
	if err != nil {
		return nil, notFound("checklist.FindSharedByID", "shared checklist not found", err)
	}
	return &c, nil
}

func (r gormChecklistTx) FindPublicShared(ctx context.Context, sort domain.SharedSort) ([]domain.Checklist, error) {
	q := r.db.WithContext(ctx).Where("is_shared = ? AND deleted_at IS NULL", true)
	if sort == domain.SortLikes {
		q = q.Order("likes DESC").Order("created_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}

	var out []domain.Checklist
	return out, apperrors.Store("checklist.FindPublicShared", q.Find(&out).Error)
}

func (r gormChecklistTx) FindVisibleItems(ctx context.Context, checklistID uint) ([]domain.ChecklistItem, error) {
	var out []domain.ChecklistItem
	err := r.db.WithContext(ctx).
		Where("checklist_id = ? AND removed_by_user = ? AND deleted_at IS NULL", checklistID, false).
		Order("checklist_item_id ASC").
		Find(&out).Error
	return out, apperrors.Store("checklist.FindVisibleItems", err)
}

func (r gormChecklistTx) LockChecklist(id uint) (*domain.Checklist, error) {
	var c domain.Checklist
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "checklist_id = ?", id).Error
	if err != nil {
		return nil, notFound("checklist.Lock", "checklist not found", err)
	}
	return &c, nil
}

func (r gormChecklistTx) LockItems(checklistID uint, ids []uint) ([]domain.ChecklistItem, error) {
	var out []domain.ChecklistItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("checklist_id = ? AND checklist_item_id IN ?", checklistID, ids).
		Order("checklist_item_id ASC").
		Find(&out).Error
	return out, err
}

func (r gormChecklistTx) InsertChecklist(c *domain.Checklist) error {
	items := c.Items
	if err := r.db.Omit(clause.Associations).Create(c).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ChecklistID = c.ID
	}
	if err := r.InsertItems(items); err != nil {
		return err
	}
	c.Items = items
	return nil
}

func (r gormChecklistTx) InsertItems(items []domain.ChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&items, itemBatchSize).Error
}

func (r gormChecklistTx) UpdateSharing(id uint, shared bool) error {
	return r.db.Model(&domain.Checklist{}).
		Where("checklist_id = ?", id).
		Update("is_shared", shared).Error
}

func (r gormChecklistTx) SoftDeleteChecklist(id uint, at time.Time) error {
	if err := r.db.Model(&domain.Checklist{}).
		Where("checklist_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at).Error; err != nil {
		return err
	}
	return r.db.Model(&domain.ChecklistItem{}).
		Where("checklist_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at).Error
}

func (r gormChecklistTx) MarkItemsRemoved(checklistID uint, ids []uint) error {
	return r.db.Model(&domain.ChecklistItem{}).
		Where("checklist_id = ? AND checklist_item_id IN ? AND removed_by_user = ?", checklistID, ids, false).
		Update("removed_by_user", true).Error
}

func (r gormChecklistTx) UpdatePackingBag(itemID uint, bag domain.PackingBag) error {
	return r.db.Model(&domain.ChecklistItem{}).
		Where("checklist_item_id = ?", itemID).
		Update("packing_bag", bag).Error
}

func (r gormChecklistTx) IncrementItemClicks(itemIDs []uint) error {
	counts := make(map[uint]int, len(itemIDs))
	for _, id := range itemIDs {
		counts[id]++
	}
	ids := make([]uint, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	// catalog rows are always locked in ascending id order
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		err := r.db.Model(&domain.Item{}).
			Where("item_id = ?", id).
			Update("click_count", gorm.Expr("click_count + ?", counts[id])).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func notFound(op, message string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, op, message)
	}
	return apperrors.Store(op, err)
}
