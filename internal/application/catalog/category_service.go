package catalog

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
)

var validate = validator.New()

// requireAdmin rejects callers without admin authority. Unauthorized
// callers are distinguished from authenticated non-admins.
func requireAdmin(principal identity.Principal) error {
	if principal.Kind() == identity.KindUnauthorized {
		return shared.ErrUnauthorized
	}
	if !principal.IsAdmin() {
		return shared.ErrUnauthorized
	}
	return nil
}

// requireAuthenticated rejects callers with no authority at all
func requireAuthenticated(principal identity.Principal) error {
	if principal.Kind() == identity.KindUnauthorized {
		return shared.ErrUnauthorized
	}
	return nil
}

// CategoryService handles category-related business operations.
// Reference data is admin-managed; reads are open to any caller
// with authority.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	publisher    shared.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, publisher shared.EventPublisher) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, principal identity.Principal, req CreateCategoryRequest) (*CategoryResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	category, err := catalog.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	events := category.GetDomainEvents()
	category.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, principal identity.Principal, id uuid.UUID) (*CategoryResponse, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// List retrieves all categories
func (s *CategoryService) List(ctx context.Context, principal identity.Principal, filter ListFilter) (shared.Paginated[CategoryResponse], error) {
	var empty shared.Paginated[CategoryResponse]

	if err := requireAuthenticated(principal); err != nil {
		return empty, err
	}
	if err := validate.Struct(filter); err != nil {
		return empty, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	domainFilter := toDomainFilter(filter)

	categories, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = *ToCategoryResponse(&cat)
	}

	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// Update updates an existing category
func (s *CategoryService) Update(ctx context.Context, principal identity.Principal, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category.Name != req.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		}
	}

	if err := category.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	events := category.GetDomainEvents()
	category.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete deletes a category. Categories that still have products
// cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, principal identity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasProducts, err := s.categoryRepo.HasProducts(ctx, category.ID)
	if err != nil {
		return err
	}
	if hasProducts {
		return shared.NewDomainError("HAS_PRODUCTS", "Cannot delete category with associated products")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// toDomainFilter converts a ListFilter to a shared.Filter
func toDomainFilter(filter ListFilter) shared.Filter {
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
	return domainFilter
}
