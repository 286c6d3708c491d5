package ports

import (
	"context"
	"time"

	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
)

// ShippingGateway is the typed client port for the external shipping
// aggregator. Every operation performs exactly one network round trip; any
// transport failure or non-success response surfaces as a GatewayError.
// Response shapes mirror the aggregator's unversioned wire contract.
type ShippingGateway interface {
	// Authenticate verifies that the server-held aggregator credentials are
	// accepted upstream. Implementations cache the resulting bearer token for
	// subsequent calls.
	Authenticate(ctx context.Context) error

	// CheckServiceability queries which couriers can service a pickup and
	// delivery postcode pair for the given parcel weight.
	CheckServiceability(ctx context.Context, req ServiceabilityRequest) ([]CourierOffer, error)

	// CreateOrder submits an adhoc order and returns the aggregator-assigned
	// identifiers.
	CreateOrder(ctx context.Context, aggregate *order.Order) (OrderSubmission, error)

	// AssignAWB requests airway-bill assignment for a shipment, optionally
	// pinned to a specific courier (courierID zero lets the aggregator pick).
	AssignAWB(ctx context.Context, aggregatorShipmentID, courierID int64) (AWBAssignment, error)

	// GenerateLabel requests one label document covering the whole batch of
	// shipment ids.
	GenerateLabel(ctx context.Context, aggregatorShipmentIDs []int64) (LabelBatch, error)

	// SchedulePickup requests a courier pickup for the batch of shipment ids.
	SchedulePickup(ctx context.Context, aggregatorShipmentIDs []int64) (PickupBatch, error)

	// TrackShipment fetches the latest tracking snapshot for an AWB code.
	TrackShipment(ctx context.Context, awbCode string) (TrackingSnapshot, error)
}

// ServiceabilityRequest describes a courier-serviceability query.
type ServiceabilityRequest struct {
	PickupPostcode   string
	DeliveryPostcode string
	Weight           float64
	COD              bool
}

// CourierOffer is one courier option returned by a serviceability query.
type CourierOffer struct {
	CourierCompanyID      int64
	CourierName           string
	Rate                  float64
	EstimatedDeliveryDays int
	CODAvailable          bool
}

// OrderSubmission is the aggregator's answer to an order creation.
// AggregatorShipmentID is zero when the response carried no shipment id.
type OrderSubmission struct {
	AggregatorOrderID    int64
	AggregatorShipmentID int64
	Status               string
}

// AWBAssignment is the aggregator's answer to an airway-bill assignment.
type AWBAssignment struct {
	AWBCode          string
	CourierCompanyID int64
	CourierName      string
}

// LabelBatch is the aggregator's answer to a label generation: a single
// document URL covering every shipment in the batch.
type LabelBatch struct {
	LabelURL string
}

// PickupBatch is the aggregator's answer to a pickup scheduling request.
// PickupDate is nil when the aggregator announced no concrete date.
type PickupBatch struct {
	PickupDate *time.Time
}

// TrackingSnapshot is the aggregator's latest view of a shipment's movement.
type TrackingSnapshot struct {
	AWBCode       string
	CurrentStatus string
	Events        []shipment.TrackingEvent
}
