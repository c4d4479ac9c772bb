package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// StoreCreatedHandler backfills a ledger row for every catalog product
// when a store is created, so a new store starts with a complete ledger.
type StoreCreatedHandler struct {
	scope       TransactionScope
	productRepo catalog.ProductRepository
	defaults    ProvisionDefaults
	logger      *zap.Logger
}

// NewStoreCreatedHandler creates a new StoreCreatedHandler
func NewStoreCreatedHandler(
	scope TransactionScope,
	productRepo catalog.ProductRepository,
	defaults ProvisionDefaults,
	logger *zap.Logger,
) *StoreCreatedHandler {
	return &StoreCreatedHandler{
		scope:       scope,
		productRepo: productRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *StoreCreatedHandler) EventTypes() []string {
	return []string{store.EventTypeStoreCreated}
}

// Handle backfills ledger rows for the new store
func (h *StoreCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*store.StoreCreatedEvent)
	if !ok {
		return nil
	}

	products, err := h.productRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	return h.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rows := make([]ledger.StoreProduct, 0, len(products))
		for _, p := range products {
			exists, err := repos.StoreProductRepo().ExistsByStoreAndProduct(ctx, created.StoreID, p.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			sp, err := ledger.NewStoreProduct(created.StoreID, p.ID, h.defaults.Price, h.defaults.Quantity)
			if err != nil {
				return err
			}
			rows = append(rows, *sp)
		}

		if len(rows) == 0 {
			return nil
		}
		if err := repos.StoreProductRepo().CreateBatch(ctx, rows); err != nil {
			return err
		}

		h.logger.Info("backfilled ledger rows for store",
			zap.String("store_id", created.StoreID.String()),
			zap.Int("rows", len(rows)))
		return nil
	})
}

var _ shared.EventHandler = (*StoreCreatedHandler)(nil)
