package shipment

import (
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Shipment is the aggregate root for the courier-side record of an order.
//
// Shipment follows these invariants:
//   - Must have a valid local identifier and a valid owning order identifier
//   - Carries the aggregator-assigned shipment id it was created from
//   - The AWB code appears only once courier assignment succeeded
//   - Status transitions follow the forward-only fulfilment machine
//   - The tracking snapshot is overwritten wholesale, never merged
type Shipment struct {
	// id is the local unique identifier for the shipment row
	id kernel.UUID

	// orderID is the local identifier of the owning order
	orderID kernel.UUID

	// aggregatorShipmentID is the aggregator-assigned shipment id; shipments
	// only come into existence when a submission response carries one
	aggregatorShipmentID int64

	awbCode     string
	courierID   int64
	courierName string

	status Status

	// currentStatus and trackingEvents mirror the aggregator's latest
	// tracking snapshot
	currentStatus  string
	trackingEvents []TrackingEvent

	labelURL    string
	invoiceURL  string
	manifestURL string

	pickupScheduled bool
	pickupDate      *time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new Shipment in Created status. Called exactly once,
// when an order submission response carries a shipment id.
func NewShipment(id, orderID kernel.UUID, aggregatorShipmentID int64) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setAggregatorShipmentID(aggregatorShipmentID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Used only by the
// repository layer.
func RestoreShipment(
	id, orderID kernel.UUID,
	aggregatorShipmentID int64,
	awbCode string,
	courierID int64,
	courierName string,
	status Status,
	currentStatus string,
	trackingEvents []TrackingEvent,
	labelURL, invoiceURL, manifestURL string,
	pickupScheduled bool,
	pickupDate *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, aggregatorShipmentID)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.awbCode = awbCode
	s.courierID = courierID
	s.courierName = courierName
	s.status = status
	s.currentStatus = currentStatus
	s.trackingEvents = trackingEvents
	s.labelURL = labelURL
	s.invoiceURL = invoiceURL
	s.manifestURL = manifestURL
	s.pickupScheduled = pickupScheduled
	s.pickupDate = pickupDate
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their local identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's local unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the local identifier of the owning order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// AggregatorShipmentID returns the aggregator-assigned shipment id.
func (s *Shipment) AggregatorShipmentID() int64 {
	return s.aggregatorShipmentID
}

// AWBCode returns the airway bill code, empty until courier assignment
// succeeded.
func (s *Shipment) AWBCode() string {
	return s.awbCode
}

// CourierID returns the assigned courier company id, zero until assigned.
func (s *Shipment) CourierID() int64 {
	return s.courierID
}

// CourierName returns the assigned courier name, empty until assigned.
func (s *Shipment) CourierName() string {
	return s.courierName
}

// Status returns the current fulfilment status.
func (s *Shipment) Status() Status {
	return s.status
}

// CurrentStatus returns the aggregator's latest tracking status string.
func (s *Shipment) CurrentStatus() string {
	return s.currentStatus
}

// TrackingEvents returns the latest tracking history snapshot.
// The returned slice is a copy.
func (s *Shipment) TrackingEvents() []TrackingEvent {
	events := make([]TrackingEvent, len(s.trackingEvents))
	copy(events, s.trackingEvents)
	return events
}

// LabelURL returns the shipping label document URL, empty until generated.
func (s *Shipment) LabelURL() string {
	return s.labelURL
}

// InvoiceURL returns the invoice document URL, empty until generated.
func (s *Shipment) InvoiceURL() string {
	return s.invoiceURL
}

// ManifestURL returns the manifest document URL, empty until generated.
func (s *Shipment) ManifestURL() string {
	return s.manifestURL
}

// PickupScheduled reports whether a courier pickup was scheduled.
func (s *Shipment) PickupScheduled() bool {
	return s.pickupScheduled
}

// PickupDate returns the scheduled pickup date, nil when none was announced.
func (s *Shipment) PickupDate() *time.Time {
	return s.pickupDate
}

// AssignAWB records a successful courier/AWB assignment from the aggregator
// and advances the status to AWBAssigned. Reassignment of a different AWB to
// an already assigned shipment is allowed; shipments further along the
// lifecycle reject the transition.
func (s *Shipment) AssignAWB(awbCode string, courierID int64, courierName string) error {
	if awbCode == "" {
		return errs.NewValueIsRequiredError("awb code")
	}

	newStatus, err := s.status.AdvanceTo(AWBAssigned)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.awbCode = awbCode
	s.courierID = courierID
	s.courierName = courierName
	return nil
}

// ApplyLabel records the label document URL returned by the aggregator and
// advances the status to LabelGenerated.
func (s *Shipment) ApplyLabel(labelURL string) error {
	if labelURL == "" {
		return errs.NewValueIsRequiredError("label url")
	}

	newStatus, err := s.status.AdvanceTo(LabelGenerated)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.labelURL = labelURL
	return nil
}

// SchedulePickup marks the shipment as having a scheduled courier pickup and
// advances the status to PickupScheduled. The pickup date is optional; the
// aggregator does not always announce one.
func (s *Shipment) SchedulePickup(pickupDate *time.Time) error {
	newStatus, err := s.status.AdvanceTo(PickupScheduled)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.pickupScheduled = true
	if pickupDate != nil {
		date := *pickupDate
		s.pickupDate = &date
	}
	return nil
}

// ApplyTracking overwrites the tracking snapshot with the aggregator's latest
// view. The previous snapshot is discarded wholesale; histories are never
// merged. Tracking does not drive the fulfilment status machine.
func (s *Shipment) ApplyTracking(currentStatus string, events []TrackingEvent) {
	s.currentStatus = currentStatus
	s.trackingEvents = make([]TrackingEvent, len(events))
	copy(s.trackingEvents, events)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setAggregatorShipmentID(aggregatorShipmentID int64) error {
	if aggregatorShipmentID <= 0 {
		return errs.NewValueIsInvalidError("aggregator shipment id")
	}
	s.aggregatorShipmentID = aggregatorShipmentID
	return nil
}
