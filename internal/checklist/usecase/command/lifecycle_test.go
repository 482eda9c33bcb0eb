package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

func TestCreateChecklistInsertsItemsAtomically(t *testing.T) {
	store := newStore()

	c := createChecklist(t, store,
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHand},
		domain.NewItem{ItemID: 2, PackingBag: domain.BagHold},
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHold},
	)

	assert.NotZero(t, c.ID)
	assert.Equal(t, domain.TravelActivity, c.TravelType)
	assert.False(t, c.IsShared)
	require.Len(t, c.Items, 3)

	items, err := store.FindVisibleItems(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	passport, _ := store.CatalogItem(1)
	assert.Equal(t, 2, passport.ClickCount)
	charger, _ := store.CatalogItem(2)
	assert.Equal(t, 1, charger.ClickCount)
}

func TestCreateChecklistLeavesNothingBehindOnFailure(t *testing.T) {
	mem := newStore()
	store := newRecordingStore(mem, "IncrementItemClicks")

	_, err := NewCreateChecklistHandler(store).Handle(context.Background(), CreateChecklistCommand{
		UserID: owner.UserID,
		Header: testHeader(),
		Items:  []domain.NewItem{{ItemID: 1, PackingBag: domain.BagHand}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.True(t, apperrors.Retryable(err))

	mine, err := mem.FindByUser(context.Background(), owner.UserID)
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.Empty(t, mem.AllItems(1))

	passport, _ := mem.CatalogItem(1)
	assert.Zero(t, passport.ClickCount)
}

func TestCreateChecklistValidation(t *testing.T) {
	header := testHeader()
	backwards := header
	backwards.TravelEnd = header.TravelStart.AddDate(0, 0, -1)
	badType := header
	badType.TravelType = "SPACE"
	untitled := header
	untitled.Title = ""

	tests := []struct {
		name string
		cmd  CreateChecklistCommand
	}{
		{"missing user", CreateChecklistCommand{Header: header}},
		{"missing title", CreateChecklistCommand{UserID: 1, Header: untitled}},
		{"end before start", CreateChecklistCommand{UserID: 1, Header: backwards}},
		{"unknown travel type", CreateChecklistCommand{UserID: 1, Header: badType}},
		{"unknown bag", CreateChecklistCommand{UserID: 1, Header: header, Items: []domain.NewItem{{ItemID: 1, PackingBag: "TRUNK"}}}},
		{"missing item id", CreateChecklistCommand{UserID: 1, Header: header, Items: []domain.NewItem{{PackingBag: domain.BagHand}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateChecklistHandler(newStore()).Handle(context.Background(), tt.cmd)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestDeleteChecklistCascadesToItems(t *testing.T) {
	store := newStore()
	c := createChecklist(t, store,
		domain.NewItem{ItemID: 1, PackingBag: domain.BagHand},
		domain.NewItem{ItemID: 2, PackingBag: domain.BagHold},
	)
	require.NoError(t, NewRemoveItemsHandler(store).Handle(context.Background(), RemoveItemsCommand{
		ChecklistID: c.ID, Actor: owner, ItemIDs: []uint{c.Items[0].ID},
	}))

	deleted, err := NewDeleteChecklistHandler(store).Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: owner})
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := store.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)

	items := store.AllItems(c.ID)
	require.Len(t, items, 2)
	for _, it := range items {
		require.NotNil(t, it.DeletedAt)
		assert.True(t, it.DeletedAt.Equal(*got.DeletedAt))
	}

	visible, err := store.FindVisibleItems(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestDeleteChecklistIsIdempotent(t *testing.T) {
	mem := newStore()
	c := createChecklist(t, mem, domain.NewItem{ItemID: 1, PackingBag: domain.BagHand})
	store := newRecordingStore(mem, "")
	h := NewDeleteChecklistHandler(store)

	first, err := h.Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: owner})
	require.NoError(t, err)
	stamp := *mustFind(t, mem, c.ID).DeletedAt

	second, err := h.Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: admin})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, store.writes["SoftDeleteChecklist"])
	assert.True(t, stamp.Equal(*mustFind(t, mem, c.ID).DeletedAt))
}

type cancelOnDeleteStore struct {
	domain.Store
	cancel context.CancelFunc
}

func (s cancelOnDeleteStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	return s.Store.Atomically(ctx, func(tx domain.Tx) error {
		return fn(cancelOnDeleteTx{Tx: tx, cancel: s.cancel})
	})
}

type cancelOnDeleteTx struct {
	domain.Tx
	cancel context.CancelFunc
}

func (t cancelOnDeleteTx) SoftDeleteChecklist(id uint, at time.Time) error {
	err := t.Tx.SoftDeleteChecklist(id, at)
	t.cancel()
	return err
}

func TestDeleteChecklistCancelledMidCascadeRollsBack(t *testing.T) {
	mem := newStore()
	c := createChecklist(t, mem, domain.NewItem{ItemID: 1, PackingBag: domain.BagHand})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := cancelOnDeleteStore{Store: mem, cancel: cancel}

	_, err := NewDeleteChecklistHandler(store).Handle(ctx, DeleteChecklistCommand{ChecklistID: c.ID, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Nil(t, mustFind(t, mem, c.ID).DeletedAt)
	for _, it := range mem.AllItems(c.ID) {
		assert.Nil(t, it.DeletedAt)
	}
}

func TestDeleteChecklistGuards(t *testing.T) {
	store := newStore()
	c := createChecklist(t, store)
	h := NewDeleteChecklistHandler(store)

	_, err := h.Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: stranger})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, mustFind(t, store, c.ID).DeletedAt)

	_, err = h.Handle(context.Background(), DeleteChecklistCommand{ChecklistID: 404, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	deleted, err := h.Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: admin})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestShareAndUnshare(t *testing.T) {
	mem := newStore()
	c := createChecklist(t, mem)
	store := newRecordingStore(mem, "")
	share := NewShareChecklistHandler(store)
	unshare := NewUnshareChecklistHandler(store)
	ctx := context.Background()

	require.NoError(t, share.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: owner}))
	assert.True(t, mustFind(t, mem, c.ID).IsShared)

	err := share.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyShared)
	assert.False(t, apperrors.Retryable(err))
	assert.Equal(t, 1, store.writes["UpdateSharing"])

	require.NoError(t, unshare.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: admin}))
	assert.False(t, mustFind(t, mem, c.ID).IsShared)

	err = unshare.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyUnshared)
	assert.Equal(t, 2, store.writes["UpdateSharing"])
}

func TestShareGuardOrderAgainstStore(t *testing.T) {
	store := newStore()
	c := createChecklist(t, store)
	ctx := context.Background()
	share := NewShareChecklistHandler(store)

	err := share.Handle(ctx, ShareChecklistCommand{ChecklistID: 12345, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = share.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: stranger})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, mustFind(t, store, c.ID).IsShared)

	_, err = NewDeleteChecklistHandler(store).Handle(ctx, DeleteChecklistCommand{ChecklistID: c.ID, Actor: owner})
	require.NoError(t, err)

	err = share.Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: stranger})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDeleted)
	err = NewUnshareChecklistHandler(store).Handle(ctx, ShareChecklistCommand{ChecklistID: c.ID, Actor: owner})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDeleted)
}

func mustFind(t *testing.T, store domain.Reader, id uint) *domain.Checklist {
	t.Helper()
	c, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

func TestDeleteUsesCurrentTime(t *testing.T) {
	store := newStore()
	c := createChecklist(t, store)
	before := time.Now()

	_, err := NewDeleteChecklistHandler(store).Handle(context.Background(), DeleteChecklistCommand{ChecklistID: c.ID, Actor: owner})
	require.NoError(t, err)

	stamp := mustFind(t, store, c.ID).DeletedAt
	require.NotNil(t, stamp)
	assert.False(t, stamp.Before(before))
}
