package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// MemoryChecklistStore is an in-process domain.Store. Units of work run one at a time
// on a copy of the state that replaces the original only when fn succeeds.
type MemoryChecklistStore struct {
	mu    sync.RWMutex
	state *memChecklistState
}

// NewMemoryChecklistStore creates an empty in-memory store
func NewMemoryChecklistStore() *MemoryChecklistStore {
	return &MemoryChecklistStore{state: &memChecklistState{
		checklists: map[uint]domain.Checklist{},
		items:      map[uint]domain.ChecklistItem{},
		catalog:    map[uint]domain.Item{},
	}}
}

// SeedCatalog adds catalog items
func (s *MemoryChecklistStore) SeedCatalog(items ...domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.state.catalog[it.ID] = it
	}
}

// CatalogItem returns a catalog item by id
func (s *MemoryChecklistStore) CatalogItem(id uint) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.state.catalog[id]
	return it, ok
}

// SetLikes overwrites the like counter of a checklist
func (s *MemoryChecklistStore) SetLikes(id uint, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.state.checklists[id]; ok {
		c.Likes = likes
		s.state.checklists[id] = c
	}
}

// AllItems returns every item row of a checklist regardless of visibility
func (s *MemoryChecklistStore) AllItems(checklistID uint) []domain.ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.itemsWhere(func(it domain.ChecklistItem) bool { return it.ChecklistID == checklistID })
}

func (s *MemoryChecklistStore) Atomically(ctx context.Context, fn func(tx domain.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperrors.Store("checklist.tx", err)
	}

	work := s.state.clone()
	if err := fn(memChecklistTx{work}); err != nil {
		return apperrors.Store("checklist.tx", err)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Store("checklist.tx", err)
	}
	s.state = work
	return nil
}

func (s *MemoryChecklistStore) FindByID(ctx context.Context, id uint) (*domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindByID(ctx, id)
}

func (s *MemoryChecklistStore) FindByUser(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindByUser(ctx, userID)
}

func (s *MemoryChecklistStore) FindSharedByUser(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindSharedByUser(ctx, userID)
}

func (s *MemoryChecklistStore) FindSharedByID(ctx context.Context, id uint) (*domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindSharedByID(ctx, id)
}

func (s *MemoryChecklistStore) FindPublicShared(ctx context.Context, sort domain.SharedSort) ([]domain.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindPublicShared(ctx, sort)
}

func (s *MemoryChecklistStore) FindVisibleItems(ctx context.Context, checklistID uint) ([]domain.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memChecklistTx{s.state}.FindVisibleItems(ctx, checklistID)
}

type memChecklistState struct {
	checklists map[uint]domain.Checklist
	items      map[uint]domain.ChecklistItem
	catalog    map[uint]domain.Item
	nextListID uint
	nextItemID uint
	clock      time.Time
}

func (st *memChecklistState) clone() *memChecklistState {
	out := *st
	out.checklists = make(map[uint]domain.Checklist, len(st.checklists))
	for k, v := range st.checklists {
		v.Items = nil
		out.checklists[k] = v
	}
	out.items = make(map[uint]domain.ChecklistItem, len(st.items))
	for k, v := range st.items {
		out.items[k] = v
	}
	out.catalog = make(map[uint]domain.Item, len(st.catalog))
	for k, v := range st.catalog {
		out.catalog[k] = v
	}
	return &out
}

// now returns strictly increasing timestamps so created_at ordering is deterministic
func (st *memChecklistState) now() time.Time {
	t := time.Now()
	if !t.After(st.clock) {
		t = st.clock.Add(time.Microsecond)
	}
	st.clock = t
	return t
}

func (st *memChecklistState) checklistsWhere(keep func(domain.Checklist) bool, less func(a, b domain.Checklist) bool) []domain.Checklist {
	out := []domain.Checklist{}
	for _, c := range st.checklists {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (st *memChecklistState) itemsWhere(keep func(domain.ChecklistItem) bool) []domain.ChecklistItem {
	out := []domain.ChecklistItem{}
	for _, it := range st.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func newestFirst(a, b domain.Checklist) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

type memChecklistTx struct {
	st *memChecklistState
}

func (t memChecklistTx) FindByID(_ context.Context, id uint) (*domain.Checklist, error) {
	c, ok := t.st.checklists[id]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound, "checklist.FindByID", "checklist not found")
	}
	return &c, nil
}

func (t memChecklistTx) FindByUser(_ context.Context, userID uint) ([]domain.Checklist, error) {
	return t.st.checklistsWhere(func(c domain.Checklist) bool {
		return c.UserID == userID && !c.IsDeleted()
	}, newestFirst), nil
}

func (t memChecklistTx) FindSharedByUser(_ context.Context, userID uint) ([]domain.Checklist, error) {
	return t.st.checklistsWhere(func(c domain.Checklist) bool {
		return c.UserID == userID && c.IsShared && !c.IsDeleted()
	}, newestFirst), nil
}

func (t memChecklistTx) FindSharedByID(_ context.Context, id uint) (*domain.Checklist, error) {
	c, ok := t.st.checklists[id]
	if !ok || !c.IsShared || c.IsDeleted() {
		return nil, apperrors.New(apperrors.KindNotFound, "checklist.FindSharedByID", "shared checklist not found")
	}
	return &c, nil
}

func (t memChecklistTx) FindPublicShared(_ context.Context, order domain.SharedSort) ([]domain.Checklist, error) {
	less := newestFirst
	if order == domain.SortLikes {
		less = func(a, b domain.Checklist) bool {
			if a.Likes != b.Likes {
				return a.Likes > b.Likes
			}
			return newestFirst(a, b)
		}
	}
	return t.st.checklistsWhere(func(c domain.Checklist) bool {
		return c.IsShared && !c.IsDeleted()
	}, less), nil
}

func (t memChecklistTx) FindVisibleItems(_ context.Context, checklistID uint) ([]domain.ChecklistItem, error) {
	return t.st.itemsWhere(func(it domain.ChecklistItem) bool {
		return it.ChecklistID == checklistID && it.IsVisible()
	}), nil
}

func (t memChecklistTx) LockChecklist(id uint) (*domain.Checklist, error) {
	c, ok := t.st.checklists[id]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound, "checklist.Lock", "checklist not found")
	}
	return &c, nil
}

func (t memChecklistTx) LockItems(checklistID uint, ids []uint) ([]domain.ChecklistItem, error) {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return t.st.itemsWhere(func(it domain.ChecklistItem) bool {
		return it.ChecklistID == checklistID && want[it.ID]
	}), nil
}

func (t memChecklistTx) InsertChecklist(c *domain.Checklist) error {
	t.st.nextListID++
	c.ID = t.st.nextListID
	c.CreatedAt = t.st.now()

	items := c.Items
	for i := range items {
		items[i].ChecklistID = c.ID
	}
	if err := t.InsertItems(items); err != nil {
		return err
	}
	c.Items = items

	stored := *c
	stored.Items = nil
	t.st.checklists[c.ID] = stored
	return nil
}

func (t memChecklistTx) InsertItems(items []domain.ChecklistItem) error {
	for i := range items {
		t.st.nextItemID++
		items[i].ID = t.st.nextItemID
		t.st.items[items[i].ID] = items[i]
	}
	return nil
}

func (t memChecklistTx) UpdateSharing(id uint, shared bool) error {
	c := t.st.checklists[id]
	c.IsShared = shared
	t.st.checklists[id] = c
	return nil
}

func (t memChecklistTx) SoftDeleteChecklist(id uint, at time.Time) error {
	c, ok := t.st.checklists[id]
	if !ok || c.DeletedAt != nil {
		return nil
	}
	c.DeletedAt = &at
	t.st.checklists[id] = c

	for itemID, it := range t.st.items {
		if it.ChecklistID == id && it.DeletedAt == nil {
			it.DeletedAt = &at
			t.st.items[itemID] = it
		}
	}
	return nil
}

func (t memChecklistTx) MarkItemsRemoved(checklistID uint, ids []uint) error {
	for _, id := range ids {
		it, ok := t.st.items[id]
		if ok && it.ChecklistID == checklistID {
			it.RemovedByUser = true
			t.st.items[id] = it
		}
	}
	return nil
}

func (t memChecklistTx) UpdatePackingBag(itemID uint, bag domain.PackingBag) error {
	it := t.st.items[itemID]
	it.PackingBag = bag
	t.st.items[itemID] = it
	return nil
}

func (t memChecklistTx) IncrementItemClicks(itemIDs []uint) error {
	for _, id := range itemIDs {
		if it, ok := t.st.catalog[id]; ok {
			it.ClickCount++
			t.st.catalog[id] = it
		}
	}
	return nil
}
