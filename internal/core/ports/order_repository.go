package ports

import (
	"context"
	"time"

	"shiprelay/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. Returns a ConflictError when the
	// merchant order id is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByOrderID retrieves an order by its merchant-supplied identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	GetByOrderID(ctx context.Context, orderID string) (*order.Order, error)

	// GetAllInCreatedStatusBefore retrieves orders still awaiting submission
	// that were created before the cutoff. Used by the reconciliation pass to
	// pick up orders stranded between local commit and gateway response.
	GetAllInCreatedStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
