package commands

import (
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

const orderDateLayout = "2006-01-02"

// CreateOrderItemParams is one raw order line as received from the caller.
type CreateOrderItemParams struct {
	Name         string
	SKU          string
	Units        int
	SellingPrice float64
	Discount     float64
	Tax          float64
	HSN          int
}

// CreateOrderParams carries the raw intake payload for a new merchant order.
// Validation happens in NewCreateOrderCommand, which converts the raw fields
// into domain value objects.
type CreateOrderParams struct {
	OrderID        string
	OrderDate      string // YYYY-MM-DD
	PickupLocation string

	BillingCustomerName string
	BillingCity         string
	BillingPincode      string
	BillingState        string
	BillingCountry      string
	BillingPhone        string
	BillingEmail        string
	BillingAddress      string

	Items []CreateOrderItemParams

	PaymentMethod string
	Weight        float64
	Length        float64
	Breadth       float64
	Height        float64
}

// CreateOrderCommand represents a validated request to record a merchant
// order and relay it to the shipping aggregator.
type CreateOrderCommand struct {
	orderID        string
	orderDate      time.Time
	pickupLocation string
	billing        order.Billing
	items          []order.Item
	payment        order.PaymentMethod
	parcel         order.Parcel

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw intake payload and converts it into
// domain value objects. All validation failures are joined so the caller sees
// every problem at once.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	var validationErrs []error

	if params.OrderID == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("order_id"))
	}

	orderDate, err := time.Parse(orderDateLayout, params.OrderDate)
	if err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("order_date", err))
	}

	billing, err := order.NewBilling(
		params.BillingCustomerName,
		params.BillingCity,
		params.BillingPincode,
		params.BillingState,
		params.BillingCountry,
		params.BillingPhone,
		params.BillingEmail,
		params.BillingAddress,
	)
	if err != nil {
		validationErrs = append(validationErrs, err)
	}

	if len(params.Items) == 0 {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("order_items"))
	}
	items := make([]order.Item, 0, len(params.Items))
	for _, raw := range params.Items {
		item, itemErr := order.NewItem(
			raw.Name, raw.SKU, raw.Units, raw.SellingPrice, raw.Discount, raw.Tax, raw.HSN)
		if itemErr != nil {
			validationErrs = append(validationErrs, itemErr)
			continue
		}
		items = append(items, item)
	}

	payment, err := order.PaymentMethodFromString(params.PaymentMethod)
	if err != nil {
		validationErrs = append(validationErrs, err)
	}

	parcel, err := order.NewParcel(params.Weight, params.Length, params.Breadth, params.Height)
	if err != nil {
		validationErrs = append(validationErrs, err)
	}

	if joined := errors.Join(validationErrs...); joined != nil {
		return CreateOrderCommand{}, joined
	}

	return CreateOrderCommand{
		orderID:        params.OrderID,
		orderDate:      orderDate,
		pickupLocation: params.PickupLocation,
		billing:        billing,
		items:          items,
		payment:        payment,
		parcel:         parcel,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the merchant-supplied order identifier.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// OrderDate returns the parsed merchant order date.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// PickupLocation returns the pickup location nickname, possibly empty.
func (c CreateOrderCommand) PickupLocation() string {
	return c.pickupLocation
}

// Billing returns the validated billing details.
func (c CreateOrderCommand) Billing() order.Billing {
	return c.billing
}

// Items returns the validated order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Payment returns the validated payment method.
func (c CreateOrderCommand) Payment() order.PaymentMethod {
	return c.payment
}

// Parcel returns the validated parcel measurements.
func (c CreateOrderCommand) Parcel() order.Parcel {
	return c.parcel
}
