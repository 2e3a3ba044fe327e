package components

import (
	"log/slog"

	"storefront-orders/internal/infra/memstore"
	"storefront-orders/internal/infra/readstore"
	"storefront-orders/internal/infra/uow"
	"storefront-orders/internal/pkg/config"
	"storefront-orders/internal/usecase/queries"
	"storefront-orders/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStore,
	),
)

type StoreResult struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Orders     queries.OrderViewRepo
	Promotions queries.PromotionViewRepo
}

// NewStore selects the backing store by STORE_DRIVER.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (StoreResult, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memstore.NewStore(logger)
		store.SeedProducts(memstore.DefaultCatalog()...)
		logger.Info("using in-memory store", "products", len(memstore.DefaultCatalog()))
		return StoreResult{
			UnitOfWork: store,
			Orders:     store,
			Promotions: memstore.NewPromotionReader(store),
		}, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return StoreResult{}, err
	}
	return StoreResult{
		UnitOfWork: uow.NewPostgresUoW(pool, logger),
		Orders:     readstore.NewOrderReadStore(pool, logger),
		Promotions: readstore.NewPromotionReadStore(pool, logger),
	}, nil
}
