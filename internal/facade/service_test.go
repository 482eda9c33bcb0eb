package facade

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/checklist/repository"
	favdomain "github.com/tair/packing-checklist/internal/favorite/domain"
	favrepository "github.com/tair/packing-checklist/internal/favorite/repository"
	"github.com/tair/packing-checklist/kafka"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

var (
	owner    = domain.Actor{UserID: 1, Authority: domain.AuthorityUser}
	stranger = domain.Actor{UserID: 2, Authority: domain.AuthorityUser}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

type fixture struct {
	svc       *Service
	lists     *repository.MemoryChecklistStore
	reviews   *favrepository.MemoryFavoriteStore
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lists := repository.NewMemoryChecklistStore()
	lists.SeedCatalog(domain.Item{ID: 1, Label: "Passport"}, domain.Item{ID: 2, Label: "Adapter"})
	reviews := favrepository.NewMemoryFavoriteStore()
	reviews.SeedReviews(favdomain.ItemReview{ID: 7, UserID: 5, ItemID: 2, Title: "Universal adapter", Likes: 3})
	pub := &recordingPublisher{}

	svc, err := InitializeServiceWithStores(lists, reviews, pub, prometheus.NewRegistry())
	require.NoError(t, err)
	return &fixture{svc: svc, lists: lists, reviews: reviews, publisher: pub}
}

func validInput() CreateChecklistInput {
	return CreateChecklistInput{
		Title:       "Lisbon",
		CityID:      3,
		TravelStart: "2026-05-01",
		TravelEnd:   "2026-05-05",
		Items: []ItemInput{
			{ItemID: 1, PackingBag: "HAND"},
			{ItemID: 2, PackingBag: "HOLD"},
		},
	}
}

func TestCreateChecklist(t *testing.T) {
	f := newFixture(t)

	c, err := f.svc.CreateChecklist(context.Background(), owner.UserID, validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.TravelActivity, c.TravelType)
	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2026, c.TravelStart.Year())
	assert.Equal(t, []string{kafka.EventTypeChecklistCreated}, f.publisher.types())
	assert.Equal(t, c.ID, f.publisher.events[0].ChecklistID)
}

func TestCreateChecklistRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateChecklistInput)
	}{
		{"missing title", func(in *CreateChecklistInput) { in.Title = "" }},
		{"missing city", func(in *CreateChecklistInput) { in.CityID = 0 }},
		{"unknown travel type", func(in *CreateChecklistInput) { in.TravelType = "SPACE" }},
		{"malformed date", func(in *CreateChecklistInput) { in.TravelStart = "01/05/2026" }},
		{"end before start", func(in *CreateChecklistInput) { in.TravelEnd = "2026-04-01" }},
		{"unknown bag", func(in *CreateChecklistInput) { in.Items[0].PackingBag = "TRUNK" }},
		{"missing item id", func(in *CreateChecklistInput) { in.Items[1].ItemID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			tt.mutate(&in)

			_, err := f.svc.CreateChecklist(context.Background(), owner.UserID, in)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.False(t, apperrors.Retryable(err))
			assert.Empty(t, f.publisher.types())

			mine, err := f.svc.ListMyChecklists(context.Background(), owner.UserID)
			require.NoError(t, err)
			assert.Empty(t, mine)
		})
	}
}

func TestEditChecklistRunsStepsInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	require.NoError(t, err)

	res, err := f.svc.EditChecklist(ctx, owner, c.ID, EditChecklistInput{
		Added:          []ItemInput{{ItemID: 1, PackingBag: "HOLD"}},
		Removed:        []uint{c.Items[0].ID},
		PackingToggled: []uint{c.Items[1].ID},
	})
	require.NoError(t, err)
	require.Len(t, res.Added, 1)
	require.Len(t, res.Toggled, 1)
	assert.Equal(t, domain.BagHand, res.Toggled[0].PackingBag)

	got, err := f.svc.GetChecklist(ctx, owner, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, c.Items[1].ID, got.Items[0].ID)
	assert.Equal(t, res.Added[0].ID, got.Items[1].ID)

	assert.Equal(t, []string{kafka.EventTypeChecklistCreated, kafka.EventTypeChecklistEdited}, f.publisher.types())
}

func TestEditChecklistKeepsEarlierStepsOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	require.NoError(t, err)

	_, err = f.svc.EditChecklist(ctx, owner, c.ID, EditChecklistInput{
		Added:   []ItemInput{{ItemID: 2, PackingBag: "HAND"}},
		Removed: []uint{9999},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := f.svc.GetChecklist(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 3)
	assert.Contains(t, f.publisher.types(), kafka.EventTypeChecklistEdited)
}

func TestEditChecklistGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	require.NoError(t, err)
	edit := EditChecklistInput{Added: []ItemInput{{ItemID: 1, PackingBag: "HAND"}}}

	_, err = f.svc.EditChecklist(ctx, stranger, c.ID, edit)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = f.svc.EditChecklist(ctx, owner, c.ID, EditChecklistInput{PackingToggled: []uint{0}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, f.svc.DeleteChecklist(ctx, owner, c.ID))
	_, err = f.svc.EditChecklist(ctx, owner, c.ID, edit)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDeleted)

	res, err := f.svc.EditChecklist(ctx, owner, c.ID, EditChecklistInput{})
	require.NoError(t, err)
	assert.Empty(t, res.Added)
}

func TestDeleteChecklistPublishesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteChecklist(ctx, owner, c.ID))
	require.NoError(t, f.svc.DeleteChecklist(ctx, owner, c.ID))

	assert.Equal(t, []string{kafka.EventTypeChecklistCreated, kafka.EventTypeChecklistDeleted}, f.publisher.types())
	_, err = f.svc.GetChecklist(ctx, owner, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestShareLifecycleAndGuardMetric(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.ShareChecklist(ctx, owner, c.ID))
	assert.ErrorIs(t, f.svc.ShareChecklist(ctx, owner, c.ID), apperrors.ErrAlreadyShared)

	shared, err := f.svc.GetShared(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, shared.Items, 2)

	public, err := f.svc.ListPublicShared(ctx, "")
	require.NoError(t, err)
	assert.Len(t, public, 1)

	require.NoError(t, f.svc.UnshareChecklist(ctx, owner, c.ID))
	assert.ErrorIs(t, f.svc.UnshareChecklist(ctx, owner, c.ID), apperrors.ErrAlreadyUnshared)

	_, err = f.svc.GetShared(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	rejections := f.svc.metrics.guardRejections
	assert.Equal(t, 1.0, testutil.ToFloat64(rejections.WithLabelValues("facade.ShareChecklist", string(apperrors.KindAlreadyShared))))
	assert.Equal(t, 1.0, testutil.ToFloat64(rejections.WithLabelValues("facade.UnshareChecklist", string(apperrors.KindAlreadyUnshared))))
}

func TestSetFavoriteScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := f.svc.SetFavorite(ctx, 42, 7, true)
		require.NoError(t, err)
		assert.Equal(t, favdomain.Result{Liked: true, Likes: 4}, res)
	}

	favs, err := f.svc.ListFavorites(ctx, 42)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Universal adapter", favs[0].Title)

	res, err := f.svc.SetFavorite(ctx, 42, 7, false)
	require.NoError(t, err)
	assert.Equal(t, favdomain.Result{Liked: false, Likes: 3}, res)

	_, err = f.svc.GetFavorite(ctx, 42, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFavorite)

	toggles := f.svc.metrics.favoriteToggles
	assert.Equal(t, 1.0, testutil.ToFloat64(toggles.WithLabelValues("liked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(toggles.WithLabelValues("noop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(toggles.WithLabelValues("unliked")))
	assert.Equal(t, []string{kafka.EventTypeFavoriteToggled, kafka.EventTypeFavoriteToggled}, f.publisher.types())
}

func TestPublishFailureDoesNotFailCommittedOperation(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")

	c, err := f.svc.CreateChecklist(context.Background(), owner.UserID, validInput())
	require.NoError(t, err)

	mine, err := f.svc.ListMyChecklists(context.Background(), owner.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, c.ID, mine[0].ID)
}

func TestStoreFailuresStayGeneric(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.CreateChecklist(ctx, owner.UserID, validInput())
	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.True(t, apperrors.Retryable(err))
	assert.Equal(t, "internal error", apperrors.PublicMessage(err))
}
