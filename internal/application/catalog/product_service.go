package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
)

// ProductService handles product-related business operations.
// Creating a product triggers ledger provisioning through the
// published ProductCreated event.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	scope        TransactionScope
	publisher    shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	scope TransactionScope,
	publisher shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		scope:        scope,
		publisher:    publisher,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, principal identity.Principal, req CreateProductRequest) (*ProductResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.CategoryID, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	events := product.GetDomainEvents()
	product.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, principal identity.Principal, id uuid.UUID) (*ProductResponse, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// List retrieves all products
func (s *ProductService) List(ctx context.Context, principal identity.Principal, filter ListFilter) (shared.Paginated[ProductResponse], error) {
	var empty shared.Paginated[ProductResponse]

	if err := requireAuthenticated(principal); err != nil {
		return empty, err
	}
	if err := validate.Struct(filter); err != nil {
		return empty, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(&p)
	}

	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListByCategory retrieves the products of one category
func (s *ProductService) ListByCategory(ctx context.Context, principal identity.Principal, categoryID uuid.UUID, filter ListFilter) ([]ProductResponse, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByCategory(ctx, categoryID, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(&p)
	}
	return responses, nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, principal identity.Principal, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	events := product.GetDomainEvents()
	product.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product together with its ledger rows and dispatch
// history, all in one transaction.
func (s *ProductService) Delete(ctx context.Context, principal identity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.DispatchRepo().DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := repos.StoreProductRepo().DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return repos.ProductRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	return s.publisher.Publish(ctx, catalog.NewProductDeletedEvent(product))
}
