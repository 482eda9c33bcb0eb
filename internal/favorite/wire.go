package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/internal/favorite/repository"
	"github.com/tair/packing-checklist/internal/favorite/usecase/command"
	"github.com/tair/packing-checklist/internal/favorite/usecase/query"
	"github.com/tair/packing-checklist/pkg/database"
)

// ProvideFavoriteStore provides the traced PostgreSQL favorite store
func ProvideFavoriteStore(db *gorm.DB, opts database.TxOptions) domain.Store {
	return repository.NewFavoriteStoreWithTracing(repository.NewGormFavoriteStore(db, opts))
}

// ProvideMemoryFavoriteStore provides an in-process favorite store
func ProvideMemoryFavoriteStore() domain.Store {
	return repository.NewFavoriteStoreWithTracing(repository.NewMemoryFavoriteStore())
}

// ProvideFavoriteReader exposes the read side of the store
func ProvideFavoriteReader(store domain.Store) domain.Reader {
	return store
}

// Handlers holds all favorite handlers
type Handlers struct {
	Set  *command.SetFavoriteHandler
	List *query.ListFavoritesHandler
	Get  *query.GetFavoriteHandler
}

// HandlerSet builds favorite handlers on top of a domain.Store
var HandlerSet = wire.NewSet(
	ProvideFavoriteReader,
	command.NewSetFavoriteHandler,
	query.NewListFavoritesHandler,
	query.NewGetFavoriteHandler,
	wire.Struct(new(Handlers), "*"),
)

// GormSet wires the favorite context to PostgreSQL
var GormSet = wire.NewSet(ProvideFavoriteStore, HandlerSet)

// MemorySet wires the favorite context to the in-process store
var MemorySet = wire.NewSet(ProvideMemoryFavoriteStore, HandlerSet)
