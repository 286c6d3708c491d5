package queries

import (
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by its merchant-supplied identifier.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated order lookup query.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order_id")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the merchant-supplied order identifier.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// OrderItemResponse is one line item of the order detail.
type OrderItemResponse struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

// OrderDetailResponse is the full order view, including billing details and
// line items.
type OrderDetailResponse struct {
	ID                kernel.UUID
	OrderID           string
	AggregatorOrderID *int64
	Status            string
	OrderDate         time.Time
	PickupLocation    string

	CustomerName string
	City         string
	Pincode      string
	State        string
	Country      string
	Phone        string
	Email        string
	Address      string

	Items         []OrderItemResponse
	PaymentMethod string
	Weight        float64
	Length        float64
	Breadth       float64
	Height        float64
	CreatedAt     time.Time
}
