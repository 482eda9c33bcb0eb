package checklist

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/checklist/repository"
	"github.com/tair/packing-checklist/internal/checklist/usecase/command"
	"github.com/tair/packing-checklist/internal/checklist/usecase/query"
	"github.com/tair/packing-checklist/pkg/database"
)

// ProvideChecklistStore provides the traced PostgreSQL checklist store
func ProvideChecklistStore(db *gorm.DB, opts database.TxOptions) domain.Store {
	return repository.NewChecklistStoreWithTracing(repository.NewGormChecklistStore(db, opts))
}

// ProvideMemoryChecklistStore provides an in-process checklist store
func ProvideMemoryChecklistStore() domain.Store {
	return repository.NewChecklistStoreWithTracing(repository.NewMemoryChecklistStore())
}

// ProvideChecklistReader exposes the read side of the store
func ProvideChecklistReader(store domain.Store) domain.Reader {
	return store
}

// CommandHandlers holds all checklist command handlers
type CommandHandlers struct {
	Create           *command.CreateChecklistHandler
	Delete           *command.DeleteChecklistHandler
	Share            *command.ShareChecklistHandler
	Unshare          *command.UnshareChecklistHandler
	AddItems         *command.AddItemsHandler
	RemoveItems      *command.RemoveItemsHandler
	TogglePackingBag *command.TogglePackingBagHandler
}

// QueryHandlers holds all checklist query handlers
type QueryHandlers struct {
	ListMine         *query.ListMyChecklistsHandler
	Get              *query.GetChecklistHandler
	ListShared       *query.ListSharedChecklistsHandler
	GetShared        *query.GetSharedChecklistHandler
	ListPublicShared *query.ListPublicSharedHandler
}

// HandlerSet builds command and query handlers on top of a domain.Store
var HandlerSet = wire.NewSet(
	ProvideChecklistReader,
	command.NewCreateChecklistHandler,
	command.NewDeleteChecklistHandler,
	command.NewShareChecklistHandler,
	command.NewUnshareChecklistHandler,
	command.NewAddItemsHandler,
	command.NewRemoveItemsHandler,
	command.NewTogglePackingBagHandler,
	query.NewListMyChecklistsHandler,
	query.NewGetChecklistHandler,
	query.NewListSharedChecklistsHandler,
	query.NewGetSharedChecklistHandler,
	query.NewListPublicSharedHandler,
	wire.Struct(new(CommandHandlers), "*"),
	wire.Struct(new(QueryHandlers), "*"),
)

// GormSet wires the checklist context to PostgreSQL
var GormSet = wire.NewSet(ProvideChecklistStore, HandlerSet)

// MemorySet wires the checklist context to the in-process store
var MemorySet = wire.NewSet(ProvideMemoryChecklistStore, HandlerSet)
