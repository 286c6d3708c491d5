// Package queries contains read-only business operations. Queries bypass the
// domain model and read straight from the database, returning flat response
// structures shaped for the API layer.
package queries

import (
	"errors"
	"fmt"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

const maxPageSize = 500

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders, newest first.
type ListOrdersQuery struct {
	skip  int
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a validated paging query. Skip must be
// non-negative; limit must be between 1 and 500.
func NewListOrdersQuery(skip, limit int) (ListOrdersQuery, error) {
	if err := validatePage(skip, limit); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		skip:  skip,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func validatePage(skip, limit int) error {
	if skip < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"skip", fmt.Errorf("%d is negative", skip))
	}
	if limit < 1 || limit > maxPageSize {
		return errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("%d is not between 1 and %d", limit, maxPageSize))
	}
	return nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Skip returns how many orders to skip.
func (q ListOrdersQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID                kernel.UUID
	OrderID           string
	AggregatorOrderID *int64
	Status            string
	OrderDate         time.Time
	PaymentMethod     string
	CustomerName      string
	CreatedAt         time.Time
}
