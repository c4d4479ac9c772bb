package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// ProductCreatedHandler provisions a ledger row in every store when a
// product enters the catalog. All rows are created in one transaction
// so a product is either visible in every store's ledger or in none.
type ProductCreatedHandler struct {
	scope     TransactionScope
	storeRepo store.StoreRepository
	defaults  ProvisionDefaults
	logger    *zap.Logger
}

// NewProductCreatedHandler creates a new ProductCreatedHandler
func NewProductCreatedHandler(
	scope TransactionScope,
	storeRepo store.StoreRepository,
	defaults ProvisionDefaults,
	logger *zap.Logger,
) *ProductCreatedHandler {
	return &ProductCreatedHandler{
		scope:     scope,
		storeRepo: storeRepo,
		defaults:  defaults,
		logger:    logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *ProductCreatedHandler) EventTypes() []string {
	return []string{catalog.EventTypeProductCreated}
}

// Handle provisions ledger rows for the new product
func (h *ProductCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*catalog.ProductCreatedEvent)
	if !ok {
		return nil
	}

	stores, err := h.storeRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		return nil
	}

	return h.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rows := make([]ledger.StoreProduct, 0, len(stores))
		for _, st := range stores {
			exists, err := repos.StoreProductRepo().ExistsByStoreAndProduct(ctx, st.ID, created.ProductID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			sp, err := ledger.NewStoreProduct(st.ID, created.ProductID, h.defaults.Price, h.defaults.Quantity)
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

		h.logger.Info("provisioned ledger rows for product",
			zap.String("product_id", created.ProductID.String()),
			zap.Int("rows", len(rows)))
		return nil
	})
}

var _ shared.EventHandler = (*ProductCreatedHandler)(nil)
