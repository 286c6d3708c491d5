package ports

import (
	"context"

	"shiprelay/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Lookups use the aggregator-assigned identifiers because that is
// how the external system addresses shipments in its responses.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByAggregatorShipmentID retrieves a shipment by the aggregator's
	// shipment id. Returns an ObjectNotFoundError when no such shipment
	// exists locally.
	GetByAggregatorShipmentID(ctx context.Context, aggregatorShipmentID int64) (*shipment.Shipment, error)

	// GetByAWBCode retrieves a shipment by its airway bill code.
	// Returns an ObjectNotFoundError when no such shipment exists locally.
	GetByAWBCode(ctx context.Context, awbCode string) (*shipment.Shipment, error)
}
