package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/shared/valueobject"
)

// dateLayout is the wire format for report date ranges
const dateLayout = "2006-01-02"

// DispatchService records sales and produces dispatch reports
type DispatchService struct {
	scope     TransactionScope
	publisher shared.EventPublisher
}

// NewDispatchService creates a new DispatchService
func NewDispatchService(scope TransactionScope, publisher shared.EventPublisher) *DispatchService {
	return &DispatchService{
		scope:     scope,
		publisher: publisher,
	}
}

// RecordDispatch sells stock out of a ledger row. The row is locked
// for the duration of the transaction so concurrent dispatches against
// the same row serialize; stock can never go negative.
//
// Only store managers record sales; admins administer the ledger but
// do not sell. Checks run in a fixed order: caller authority, then
// ownership of the row's store, then quantity validity, then stock
// availability.
func (s *DispatchService) RecordDispatch(ctx context.Context, principal identity.Principal, req RecordDispatchRequest) (*DispatchResponse, error) {
	if !principal.IsStoreManager() {
		return nil, shared.ErrUnauthorized
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	discount := valueobject.ZeroUSD()
	if req.Discount != nil {
		discount = valueobject.NewMoneyUSD(*req.Discount)
	}

	var (
		response *DispatchResponse
		events   []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sp, err := repos.StoreProductRepo().FindByIDForUpdate(ctx, req.StoreProductID)
		if err != nil {
			return err
		}

		if !principal.CanManageStore(sp.StoreID) {
			return shared.ErrNotStoreOwner
		}

		var soldBy *uuid.UUID
		if id := principal.UserID(); id != uuid.Nil {
			soldBy = &id
		}

		dispatch, err := sp.RecordDispatch(req.QuantitySold, discount, soldBy)
		if err != nil {
			return err
		}

		if err := repos.DispatchRepo().Create(ctx, dispatch); err != nil {
			return err
		}
		if err := repos.StoreProductRepo().SaveWithLock(ctx, sp); err != nil {
			return err
		}

		events = sp.GetDomainEvents()
		sp.ClearDomainEvents()

		resp := ToDispatchResponse(dispatch)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events go out only after the transaction has committed
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return response, nil
}

// Report produces a store's dispatch report, optionally limited to an
// inclusive date range. Store managers always report on their own
// store; only admins may pick a store explicitly. An empty range
// yields zero totals.
func (s *DispatchService) Report(ctx context.Context, principal identity.Principal, req DispatchReportRequest) (*DispatchReportResponse, error) {
	if principal.Kind() == identity.KindUnauthorized {
		return nil, shared.ErrUnauthorized
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	var storeID uuid.UUID
	switch {
	case principal.IsStoreManager():
		storeID = principal.StoreID()
	case principal.IsAdmin() && req.StoreID != nil:
		storeID = *req.StoreID
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Store is required")
	}

	// The range is optional: with no dates the report covers the
	// store's entire dispatch history.
	var start, end time.Time
	switch {
	case req.StartDate == "" && req.EndDate == "":
	case req.StartDate == "" || req.EndDate == "":
		return nil, shared.NewDomainError("INVALID_DATE", "Start and end date must be supplied together")
	default:
		var err error
		start, err = time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Start date must use the YYYY-MM-DD format")
		}
		endDay, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "End date must use the YYYY-MM-DD format")
		}
		if endDay.Before(start) {
			return nil, shared.NewDomainError("INVALID_DATE", "End date cannot precede start date")
		}

		// The range covers whole days: the end bound stretches to
		// the last instant of the end date.
		end = endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	var (
		dispatches []ledger.Dispatch
		totals     ledger.DispatchTotals
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		dispatches, err = repos.DispatchRepo().FindByStore(ctx, storeID, start, end, shared.Filter{OrderBy: "timestamp", OrderDir: "asc"})
		if err != nil {
			return err
		}
		totals, err = repos.DispatchRepo().TotalsByStore(ctx, storeID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]DispatchResponse, len(dispatches))
	for i, d := range dispatches {
		responses[i] = ToDispatchResponse(&d)
	}

	return &DispatchReportResponse{
		StoreID:       storeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Dispatches:    responses,
		TotalQuantity: totals.QuantitySold,
		TotalAmount:   totals.TotalAmount,
	}, nil
}
