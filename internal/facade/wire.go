//go:build wireinject
// +build wireinject

package facade

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/packing-checklist/internal/checklist"
	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/internal/favorite"
	domain2 "github.com/tair/packing-checklist/internal/favorite/domain"
	"github.com/tair/packing-checklist/pkg/database"
)

var ServiceSet = wire.NewSet(
	NewMetrics,
	NewService,
)

// InitializeService wires the facade to PostgreSQL
func InitializeService(db *gorm.DB, opts database.TxOptions, publisher EventPublisher, reg prometheus.Registerer) (*Service, error) {
	wire.Build(
		checklist.GormSet,
		favorite.GormSet,
		ServiceSet,
	)
	return nil, nil
}

// InitializeInMemoryService wires the facade to in-process stores
func InitializeInMemoryService(publisher EventPublisher, reg prometheus.Registerer) (*Service, error) {
	wire.Build(
		checklist.MemorySet,
		favorite.MemorySet,
		ServiceSet,
	)
	return nil, nil
}

// InitializeServiceWithStores wires the facade to caller-provided stores
func InitializeServiceWithStores(checklistStore domain.Store, favoriteStore domain2.Store, publisher EventPublisher, reg prometheus.Registerer) (*Service, error) {
	wire.Build(
		checklist.HandlerSet,
		favorite.HandlerSet,
		ServiceSet,
	)
	return nil, nil
}
