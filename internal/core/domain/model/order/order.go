package order

import (
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a merchant order awaiting relay to the
// shipping aggregator.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty merchant order id
//   - Must carry at least one line item
//   - Status transitions follow the created -> submitted | failed machine
//   - The aggregator order id is only present once the order was submitted
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the local unique identifier for the order row
	id kernel.UUID

	// orderID is the merchant-supplied business key, unique across orders
	orderID string

	// aggregatorOrderID is assigned by the aggregator on successful submission
	aggregatorOrderID *int64

	orderDate      time.Time
	pickupLocation string
	billing        Billing
	items          []Item
	payment        PaymentMethod
	parcel         Parcel

	// status represents the current state in the submission lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold
// before the record is persisted.
//
// An empty pickup location defaults to "Primary", matching the aggregator's
// default pickup nickname.
func NewOrder(
	id kernel.UUID,
	orderID string,
	orderDate time.Time,
	pickupLocation string,
	billing Billing,
	items []Item,
	payment PaymentMethod,
	parcel Parcel,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderID(orderID),
		order.setOrderDate(orderDate),
		order.setPickupLocation(pickupLocation),
		order.setBilling(billing),
		order.setItems(items),
		order.setPayment(payment),
		order.setParcel(parcel),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and aggregator-assigned identifier. Used only by the repository
// layer.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	orderDate time.Time,
	pickupLocation string,
	billing Billing,
	items []Item,
	payment PaymentMethod,
	parcel Parcel,
	status Status,
	aggregatorOrderID *int64,
) (*Order, error) {
	order, err := NewOrder(id, orderID, orderDate, pickupLocation, billing, items, payment, parcel)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.aggregatorOrderID = aggregatorOrderID
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their local identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's local unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the merchant-supplied order identifier.
func (o *Order) OrderID() string {
	return o.orderID
}

// AggregatorOrderID returns the aggregator-assigned order identifier.
// Returns nil until the order was successfully submitted.
func (o *Order) AggregatorOrderID() *int64 {
	return o.aggregatorOrderID
}

// OrderDate returns the merchant order date.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// PickupLocation returns the aggregator pickup location nickname.
func (o *Order) PickupLocation() string {
	return o.pickupLocation
}

// Billing returns the billing details.
func (o *Order) Billing() Billing {
	return o.billing
}

// Items returns the order line items. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Payment returns the payment method.
func (o *Order) Payment() PaymentMethod {
	return o.payment
}

// Parcel returns the physical parcel characteristics.
func (o *Order) Parcel() Parcel {
	return o.parcel
}

// Status returns the current submission status.
func (o *Order) Status() Status {
	return o.status
}

// SubTotal returns the order value derived from its line items:
// units times selling price minus discount, summed over all items.
func (o *Order) SubTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += float64(item.Units())*item.SellingPrice() - item.Discount()
	}
	return total
}

// MarkSubmitted records aggregator acceptance: stores the aggregator-assigned
// order id and advances the status to Submitted.
//
// Only orders in Created status can be submitted. The aggregator order id
// must be positive.
func (o *Order) MarkSubmitted(aggregatorOrderID int64) error {
	if aggregatorOrderID <= 0 {
		return errs.NewValueIsInvalidError("aggregator order id")
	}

	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.aggregatorOrderID = &aggregatorOrderID
	return nil
}

// MarkFailed records aggregator rejection after the order was already
// persisted. The record is kept in Failed status for audit; it is the
// compensating write for the uncovered external call.
//
// Only orders in Created status can fail.
func (o *Order) MarkFailed() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's local identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderID validates and sets the merchant order identifier.
func (o *Order) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		pickupLocation = "Primary"
	}
	o.pickupLocation = pickupLocation
	return nil
}

func (o *Order) setBilling(billing Billing) error {
	// Zero-value billing bypassed NewBilling.
	if billing.customerName == "" {
		return errs.NewValueIsRequiredError("billing")
	}
	o.billing = billing
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setParcel(parcel Parcel) error {
	// Zero-value parcel bypassed NewParcel.
	if parcel.weight <= 0 {
		return errs.NewValueIsRequiredError("parcel")
	}
	o.parcel = parcel
	return nil
}
