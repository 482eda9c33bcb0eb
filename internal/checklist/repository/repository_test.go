package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/checklist/usecase/command"
	"github.com/tair/packing-checklist/internal/checklist/usecase/query"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/database"
)

var gormOwner = domain.Actor{UserID: 1, Authority: domain.AuthorityUser}

func newGormStore(t *testing.T, catalog ...domain.Item) (*GormChecklistStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.Item{}, &domain.Checklist{}, &domain.ChecklistItem{}))
	for i := range catalog {
		require.NoError(t, db.Create(&catalog[i]).Error)
	}
	return NewGormChecklistStore(db, database.DefaultTxOptions), db
}

func createGorm(t *testing.T, store domain.Store, items ...domain.NewItem) *domain.Checklist {
	t.Helper()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	c, err := command.NewCreateChecklistHandler(store).Handle(context.Background(), command.CreateChecklistCommand{
		UserID: gormOwner.UserID,
		Header: domain.Header{Title: "Osaka", CityID: 3, TravelStart: start, TravelEnd: start.AddDate(0, 0, 4)},
		Items:  items,
	})
	require.NoError(t, err)
	return c
}

func TestGormCreateAssignsIDsAndCountsClicks(t *testing.T) {
	store, db := newGormStore(t, domain.Item{ID: 1, Label: "passport"}, domain.Item{ID: 2, Label: "charger"})

	c := createGorm(t, store,
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHand},
		domain.NewItem{ItemID: 2, PackingBag: domain.BagHold},
	)
	assert.NotZero(t, c.ID)
	require.Len(t, c.Items, 2)
	for _, it := range c.Items {
		assert.NotZero(t, it.ID)
		assert.Equal(t, c.ID, it.ChecklistID)
	}
	createGorm(t, store, domain.NewItem{ItemID: 1, PackingBag: domain.BagHold})

	var passport domain.Item
	require.NoError(t, db.First(&passport, "item_id = ?", 1).Error)
	assert.Equal(t, 2, passport.ClickCount)

	got, err := query.NewGetChecklistHandler(store).Handle(context.Background(), query.GetChecklistQuery{ChecklistID: c.ID, Actor: gormOwner})
	require.NoError(t, err)
	assert.Equal(t, "Osaka", got.Title)
	assert.Len(t, got.Items, 2)
}

func TestGormToggleAndRemove(t *testing.T) {
	store, _ := newGormStore(t, domain.Item{ID: 1, Label: "passport"}, domain.Item{ID: 2, Label: "charger"})
	ctx := context.Background()
	c := createGorm(t, store,
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHand},
		domain.NewItem{ItemID: 2, PackingBag: domain.BagHold},
	)
	first, second := c.Items[0].ID, c.Items[1].ID

	toggled, err := command.NewTogglePackingBagHandler(store).Handle(ctx, command.TogglePackingBagCommand{
		ChecklistID: c.ID, Actor: gormOwner, ItemIDs: []uint{first, first},
	})
	require.NoError(t, err)
	require.Len(t, toggled, 1)
	assert.Equal(t, domain.BagHold, toggled[0].PackingBag)

	require.NoError(t, command.NewRemoveItemsHandler(store).Handle(ctx, command.RemoveItemsCommand{
		ChecklistID: c.ID, Actor: gormOwner, ItemIDs: []uint{second},
	}))

	visible, err := store.FindVisibleItems(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, first, visible[0].ID)
	assert.Equal(t, domain.BagHold, visible[0].PackingBag)

	_, err = command.NewTogglePackingBagHandler(store).Handle(ctx, command.TogglePackingBagCommand{
		ChecklistID: c.ID, Actor: gormOwner, ItemIDs: []uint{second},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGormDeleteCascadesOntoItems(t *testing.T) {
	store, db := newGormStore(t, domain.Item{ID: 1, Label: "passport"}, domain.Item{ID: 2, Label: "charger"})
	ctx := context.Background()
	c := createGorm(t, store,
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHand},
		domain.NewItem{ItemID: 2, PackingBag: domain.BagHold},
	)
	other := createGorm(t, store, domain.NewItem{ItemID: 1, PackingBag: domain.BagHand})

	h := command.NewDeleteChecklistHandler(store)
	deleted, err := h.Handle(ctx, command.DeleteChecklistCommand{ChecklistID: c.ID, Actor: gormOwner})
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = h.Handle(ctx, command.DeleteChecklistCommand{ChecklistID: c.ID, Actor: gormOwner})
	require.NoError(t, err)
	assert.False(t, deleted)

	var live int64
	require.NoError(t, db.Model(&domain.ChecklistItem{}).Where("checklist_id = ? AND deleted_at IS NULL", c.ID).Count(&live).Error)
	assert.Zero(t, live)
	require.NoError(t, db.Model(&domain.ChecklistItem{}).Where("checklist_id = ? AND deleted_at IS NULL", other.ID).Count(&live).Error)
	assert.Equal(t, int64(1), live)

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted())

	_, err = query.NewGetChecklistHandler(store).Handle(ctx, query.GetChecklistQuery{ChecklistID: c.ID, Actor: gormOwner})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = command.NewShareChecklistHandler(store).Handle(ctx, command.ShareChecklistCommand{ChecklistID: c.ID, Actor: gormOwner})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDeleted)
}

func TestGormShareAndPublicList(t *testing.T) {
	store, _ := newGormStore(t)
	ctx := context.Background()
	c := createGorm(t, store)

	share := command.NewShareChecklistHandler(store)
	require.NoError(t, share.Handle(ctx, command.ShareChecklistCommand{ChecklistID: c.ID, Actor: gormOwner}))
	err := share.Handle(ctx, command.ShareChecklistCommand{ChecklistID: c.ID, Actor: gormOwner})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyShared)

	public, err := store.FindPublicShared(ctx, domain.SortRecent)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, c.ID, public[0].ID)

	got, err := query.NewGetSharedChecklistHandler(store).Handle(ctx, query.GetSharedChecklistQuery{ChecklistID: c.ID})
	require.NoError(t, err)
	assert.True(t, got.IsShared)

	require.NoError(t, command.NewUnshareChecklistHandler(store).Handle(ctx, command.ShareChecklistCommand{ChecklistID: c.ID, Actor: gormOwner}))
	_, err = store.FindSharedByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
