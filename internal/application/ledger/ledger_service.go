package ledger

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/shared/valueobject"
)

var validate = validator.New()

// authorizeStoreAccess checks that the principal may operate the given
// store's ledger. Callers with no authority at all are rejected before
// store ownership is considered.
func authorizeStoreAccess(principal identity.Principal, storeID uuid.UUID) error {
	if principal.Kind() == identity.KindUnauthorized {
		return shared.ErrUnauthorized
	}
	if !principal.CanManageStore(storeID) {
		return shared.ErrNotStoreOwner
	}
	return nil
}

// LedgerService handles reads and direct updates of ledger rows
type LedgerService struct {
	storeProductRepo ledger.StoreProductRepository
	publisher        shared.EventPublisher
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	storeProductRepo ledger.StoreProductRepository,
	publisher shared.EventPublisher,
) *LedgerService {
	return &LedgerService{
		storeProductRepo: storeProductRepo,
		publisher:        publisher,
	}
}

// GetEntry retrieves a single ledger row
func (s *LedgerService) GetEntry(ctx context.Context, principal identity.Principal, id uuid.UUID) (*StoreProductResponse, error) {
	sp, err := s.storeProductRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeStoreAccess(principal, sp.StoreID); err != nil {
		return nil, err
	}

	return ToStoreProductResponse(sp), nil
}

// GetEntryByPair retrieves the ledger row of a (store, product) pair
func (s *LedgerService) GetEntryByPair(ctx context.Context, principal identity.Principal, storeID, productID uuid.UUID) (*StoreProductResponse, error) {
	if err := authorizeStoreAccess(principal, storeID); err != nil {
		return nil, err
	}

	sp, err := s.storeProductRepo.FindByStoreAndProduct(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	return ToStoreProductResponse(sp), nil
}

// ListForStore retrieves the ledger rows of a store
func (s *LedgerService) ListForStore(ctx context.Context, principal identity.Principal, storeID uuid.UUID, filter StoreProductListFilter) (shared.Paginated[StoreProductResponse], error) {
	var empty shared.Paginated[StoreProductResponse]

	if err := authorizeStoreAccess(principal, storeID); err != nil {
		return empty, err
	}
	if err := validate.Struct(filter); err != nil {
		return empty, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	domainFilter := shared.DefaultFilter()
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
		if filter.OrderDir != "" {
			domainFilter.OrderDir = filter.OrderDir
		}
	}

	rows, err := s.storeProductRepo.FindByStore(ctx, storeID, domainFilter)
	if err != nil {
		return empty, err
	}

	total, err := s.storeProductRepo.CountByStore(ctx, storeID, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]StoreProductResponse, len(rows))
	for i, row := range rows {
		responses[i] = *ToStoreProductResponse(&row)
	}

	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// UpdatePriceAndQuantity replaces a row's price and on-hand quantity
func (s *LedgerService) UpdatePriceAndQuantity(ctx context.Context, principal identity.Principal, id uuid.UUID, req UpdateStoreProductRequest) (*StoreProductResponse, error) {
	sp, err := s.storeProductRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeStoreAccess(principal, sp.StoreID); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	price := valueobject.NewMoneyUSD(req.Price)
	if err := sp.SetPriceAndQuantity(price, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.storeProductRepo.SaveWithLock(ctx, sp); err != nil {
		return nil, err
	}

	events := sp.GetDomainEvents()
	sp.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToStoreProductResponse(sp), nil
}
