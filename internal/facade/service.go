package facade

import (
	"context"

	"github.com/tair/packing-checklist/internal/checklist"
	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/checklist/usecase/command"
	"github.com/tair/packing-checklist/internal/checklist/usecase/query"
	"github.com/tair/packing-checklist/internal/favorite"
	favdomain "github.com/tair/packing-checklist/internal/favorite/domain"
	favcommand "github.com/tair/packing-checklist/internal/favorite/usecase/command"
	favquery "github.com/tair/packing-checklist/internal/favorite/usecase/query"
	"github.com/tair/packing-checklist/kafka"
	"github.com/tair/packing-checklist/pkg/apperrors"
	"github.com/tair/packing-checklist/pkg/logger"
)

// Service is the single entry point used by transport handlers. Every operation
// runs its own unit of work; events are published only after it commits.
type Service struct {
	commands  *checklist.CommandHandlers
	queries   *checklist.QueryHandlers
	favorites *favorite.Handlers
	publisher EventPublisher
	metrics   *Metrics
}

// NewService creates the facade
func NewService(
	commands *checklist.CommandHandlers,
	queries *checklist.QueryHandlers,
	favorites *favorite.Handlers,
	publisher EventPublisher,
	metrics *Metrics,
) *Service {
	return &Service{
		commands:  commands,
		queries:   queries,
		favorites: favorites,
		publisher: publisher,
		metrics:   metrics,
	}
}

// EditResult holds the rows touched by an edit
type EditResult struct {
	Added   []domain.ChecklistItem `json:"added"`
	Toggled []domain.ChecklistItem `json:"toggled"`
}

// CreateChecklist validates the input and creates the checklist with its items in one transaction
func (s *Service) CreateChecklist(ctx context.Context, userID uint, in CreateChecklistInput) (*domain.Checklist, error) {
	const op = "facade.CreateChecklist"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}
	header, err := in.header()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, op, err)
	}

	c, err := s.commands.Create.Handle(ctx, command.CreateChecklistCommand{
		UserID: userID,
		Header: header,
		Items:  newItems(in.Items),
	})
	if err != nil {
		return nil, s.fail(op, err)
	}

	event := kafka.NewEvent(kafka.EventTypeChecklistCreated, userID)
	event.ChecklistID = c.ID
	event.Items = len(c.Items)
	s.publish(ctx, event)
	return c, nil
}

// DeleteChecklist soft-deletes a checklist and its items. Deleting twice succeeds.
func (s *Service) DeleteChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error {
	deleted, err := s.commands.Delete.Handle(ctx, command.DeleteChecklistCommand{ChecklistID: checklistID, Actor: actor})
	if err != nil {
		return s.fail("facade.DeleteChecklist", err)
	}
	if deleted {
		event := kafka.NewEvent(kafka.EventTypeChecklistDeleted, actor.UserID)
		event.ChecklistID = checklistID
		s.publish(ctx, event)
	}
	return nil
}

// EditChecklist applies additions, removals and bag toggles in that order. Each step is
// its own transaction: a failing step leaves the earlier ones committed.
func (s *Service) EditChecklist(ctx context.Context, actor domain.Actor, checklistID uint, in EditChecklistInput) (*EditResult, error) {
	const op = "facade.EditChecklist"

	if err := validateInput(op, in); err != nil {
		return nil, err
	}

	res := &EditResult{Added: []domain.ChecklistItem{}, Toggled: []domain.ChecklistItem{}}
	if in.IsEmpty() {
		return res, nil
	}

	var err error
	changed := false
	defer func() {
		if changed {
			event := kafka.NewEvent(kafka.EventTypeChecklistEdited, actor.UserID)
			event.ChecklistID = checklistID
			event.Items = len(res.Added)
			s.publish(ctx, event)
		}
	}()

	if len(in.Added) > 0 {
		if res.Added, err = s.commands.AddItems.Handle(ctx, command.AddItemsCommand{
			ChecklistID: checklistID,
			Actor:       actor,
			Items:       newItems(in.Added),
		}); err != nil {
			return nil, s.fail(op, err)
		}
		changed = true
	}

	if len(in.Removed) > 0 {
		if err = s.commands.RemoveItems.Handle(ctx, command.RemoveItemsCommand{
			ChecklistID: checklistID,
			Actor:       actor,
			ItemIDs:     in.Removed,
		}); err != nil {
			return nil, s.fail(op, err)
		}
		changed = true
	}

	if len(in.PackingToggled) > 0 {
		if res.Toggled, err = s.commands.TogglePackingBag.Handle(ctx, command.TogglePackingBagCommand{
			ChecklistID: checklistID,
			Actor:       actor,
			ItemIDs:     in.PackingToggled,
		}); err != nil {
			return nil, s.fail(op, err)
		}
		changed = true
	}

	return res, nil
}

// ShareChecklist makes a checklist public
func (s *Service) ShareChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error {
	if err := s.commands.Share.Handle(ctx, command.ShareChecklistCommand{ChecklistID: checklistID, Actor: actor}); err != nil {
		return s.fail("facade.ShareChecklist", err)
	}
	event := kafka.NewEvent(kafka.EventTypeChecklistShared, actor.UserID)
	event.ChecklistID = checklistID
	s.publish(ctx, event)
	return nil
}

// UnshareChecklist makes a checklist private again
func (s *Service) UnshareChecklist(ctx context.Context, actor domain.Actor, checklistID uint) error {
	if err := s.commands.Unshare.Handle(ctx, command.ShareChecklistCommand{ChecklistID: checklistID, Actor: actor}); err != nil {
		return s.fail("facade.UnshareChecklist", err)
	}
	event := kafka.NewEvent(kafka.EventTypeChecklistUnshared, actor.UserID)
	event.ChecklistID = checklistID
	s.publish(ctx, event)
	return nil
}

// SetFavorite brings the (user, review) favorite to the desired state
func (s *Service) SetFavorite(ctx context.Context, userID, reviewID uint, desired bool) (favdomain.Result, error) {
	res, err := s.favorites.Set.Handle(ctx, favcommand.SetFavoriteCommand{UserID: userID, ReviewID: reviewID, Desired: desired})
	if err != nil {
		return favdomain.Result{}, s.fail("facade.SetFavorite", err)
	}

	s.metrics.favoriteOutcome(res.Liked, res.Changed)
	if res.Changed {
		event := kafka.NewEvent(kafka.EventTypeFavoriteToggled, userID)
		event.ReviewID = reviewID
		event.Liked = res.Liked
		event.Likes = res.Likes
		s.publish(ctx, event)
	}
	return res.Result, nil
}

// ListMyChecklists returns the caller's active checklists, newest first
func (s *Service) ListMyChecklists(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	out, err := s.queries.ListMine.Handle(ctx, query.ListMyChecklistsQuery{UserID: userID})
	return out, s.fail("facade.ListMyChecklists", err)
}

// GetChecklist returns one of the caller's checklists with its visible items
func (s *Service) GetChecklist(ctx context.Context, actor domain.Actor, checklistID uint) (*domain.Checklist, error) {
	out, err := s.queries.Get.Handle(ctx, query.GetChecklistQuery{ChecklistID: checklistID, Actor: actor})
	return out, s.fail("facade.GetChecklist", err)
}

// ListShared returns the caller's shared checklists
func (s *Service) ListShared(ctx context.Context, userID uint) ([]domain.Checklist, error) {
	out, err := s.queries.ListShared.Handle(ctx, query.ListSharedChecklistsQuery{UserID: userID})
	return out, s.fail("facade.ListShared", err)
}

// GetShared returns a shared checklist to anyone
func (s *Service) GetShared(ctx context.Context, checklistID uint) (*domain.Checklist, error) {
	out, err := s.queries.GetShared.Handle(ctx, query.GetSharedChecklistQuery{ChecklistID: checklistID})
	return out, s.fail("facade.GetShared", err)
}

// ListPublicShared returns every shared checklist sorted by recent or likes
func (s *Service) ListPublicShared(ctx context.Context, sort string) ([]domain.Checklist, error) {
	out, err := s.queries.ListPublicShared.Handle(ctx, query.ListPublicSharedQuery{Sort: sort})
	return out, s.fail("facade.ListPublicShared", err)
}

// ListFavorites returns the caller's favorites, newest first
func (s *Service) ListFavorites(ctx context.Context, userID uint) ([]favdomain.Summary, error) {
	out, err := s.favorites.List.Handle(ctx, favquery.ListFavoritesQuery{UserID: userID})
	return out, s.fail("facade.ListFavorites", err)
}

// GetFavorite returns the caller's favorite on one review
func (s *Service) GetFavorite(ctx context.Context, userID, reviewID uint) (*favdomain.Summary, error) {
	out, err := s.favorites.Get.Handle(ctx, favquery.GetFavoriteQuery{UserID: userID, ReviewID: reviewID})
	return out, s.fail("facade.GetFavorite", err)
}

// fail normalizes err into the error taxonomy and records guard rejections
func (s *Service) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	err = apperrors.Store(op, err)
	s.metrics.observe(op, err)
	return err
}

// publish is best effort: the operation already committed
func (s *Service) publish(ctx context.Context, event kafka.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", event.EventType).
			Str("event_id", event.EventID).
			Msg("Failed to publish event")
	}
}
