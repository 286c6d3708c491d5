package queries

import (
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves a page of shipments, newest first.
type ListShipmentsQuery struct {
	skip  int
	limit int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a validated paging query. Skip must be
// non-negative; limit must be between 1 and 500.
func NewListShipmentsQuery(skip, limit int) (ListShipmentsQuery, error) {
	if err := validatePage(skip, limit); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		skip:  skip,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Skip returns how many shipments to skip.
func (q ListShipmentsQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// ShipmentResponse is one row of the shipment listing.
type ShipmentResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	AggregatorShipmentID int64
	AWBCode              string
	CourierID            int64
	CourierName          string
	Status               string
	CurrentStatus        string
	LabelURL             string
	PickupScheduled      bool
	PickupDate           *time.Time
	CreatedAt            time.Time
}
