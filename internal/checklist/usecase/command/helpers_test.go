package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/checklist/repository"
)

var (
	owner    = domain.Actor{UserID: 1, Authority: domain.AuthorityUser}
	stranger = domain.Actor{UserID: 2, Authority: domain.AuthorityUser}
	admin    = domain.Actor{UserID: 99, Authority: domain.AuthorityAdmin}
)

func testHeader() domain.Header {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return domain.Header{
		Title:       "Jeju summer",
		CityID:      4,
		TravelStart: start,
		TravelEnd:   start.AddDate(0, 0, 3),
	}
}

func newStore() *repository.MemoryChecklistStore {
	s := repository.NewMemoryChecklistStore()
	s.SeedCatalog(
		domain.Item{ID: 1, Label: "Passport"},
		domain.Item{ID: 2, Label: "Charger"},
		domain.Item{ID: 3, Label: "Sunscreen"},
	)
	return s
}

func createChecklist(t *testing.T, store domain.Store, items ...domain.NewItem) *domain.Checklist {
	t.Helper()
	c, err := NewCreateChecklistHandler(store).Handle(context.Background(), CreateChecklistCommand{
		UserID: owner.UserID,
		Header: testHeader(),
		Items:  items,
	})
	require.NoError(t, err)
	return c
}

var errInjected = errors.New("injected failure")

// recordingStore wraps a store to count writes and optionally fail one of them.
type recordingStore struct {
	domain.Store
	failOn string
	writes map[string]int
}

func newRecordingStore(next domain.Store, failOn string) *recordingStore {
	return &recordingStore{Store: next, failOn: failOn, writes: map[string]int{}}
}

func (s *recordingStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	return s.Store.Atomically(ctx, func(tx domain.Tx) error {
		return fn(&recordingTx{Tx: tx, s: s})
	})
}

type recordingTx struct {
	domain.Tx
	s *recordingStore
}

func (t *recordingTx) write(name string) error {
	t.s.writes[name]++
	if t.s.failOn == name {
		return errInjected
	}
	return nil
}

func (t *recordingTx) InsertChecklist(c *domain.Checklist) error {
	if err := t.Tx.InsertChecklist(c); err != nil {
		return err
	}
	return t.write("InsertChecklist")
}

func (t *recordingTx) InsertItems(items []domain.ChecklistItem) error {
	if err := t.Tx.InsertItems(items); err != nil {
		return err
	}
	return t.write("InsertItems")
}

func (t *recordingTx) UpdateSharing(id uint, shared bool) error {
	if err := t.write("UpdateSharing"); err != nil {
		return err
	}
	return t.Tx.UpdateSharing(id, shared)
}

func (t *recordingTx) SoftDeleteChecklist(id uint, at time.Time) error {
	if err := t.write("SoftDeleteChecklist"); err != nil {
		return err
	}
	return t.Tx.SoftDeleteChecklist(id, at)
}

func (t *recordingTx) MarkItemsRemoved(checklistID uint, ids []uint) error {
	if err := t.write("MarkItemsRemoved"); err != nil {
		return err
	}
	return t.Tx.MarkItemsRemoved(checklistID, ids)
}

func (t *recordingTx) UpdatePackingBag(itemID uint, bag domain.PackingBag) error {
	if err := t.Tx.UpdatePackingBag(itemID, bag); err != nil {
		return err
	}
	return t.write("UpdatePackingBag")
}

func (t *recordingTx) IncrementItemClicks(itemIDs []uint) error {
	if err := t.Tx.IncrementItemClicks(itemIDs); err != nil {
		return err
	}
	return t.write("IncrementItemClicks")
}
