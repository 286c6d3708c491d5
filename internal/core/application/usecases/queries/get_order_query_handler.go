package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its full detail from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// with the merchant id exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			aggregator_order_id,
			status,
			order_date,
			pickup_location,
			billing_customer_name,
			billing_city,
			billing_pincode,
			billing_state,
			billing_country,
			billing_phone,
			billing_email,
			billing_address,
			items,
			payment_method,
			weight,
			length,
			breadth,
			height,
			created_at
		FROM orders
		WHERE order_id = ?
	`, query.OrderID()).Row()

	var resp OrderDetailResponse
	var id uuid.UUID
	var rawItems []byte

	err := row.Scan(
		&id,
		&resp.OrderID,
		&resp.AggregatorOrderID,
		&resp.Status,
		&resp.OrderDate,
		&resp.PickupLocation,
		&resp.CustomerName,
		&resp.City,
		&resp.Pincode,
		&resp.State,
		&resp.Country,
		&resp.Phone,
		&resp.Email,
		&resp.Address,
		&rawItems,
		&resp.PaymentMethod,
		&resp.Weight,
		&resp.Length,
		&resp.Breadth,
		&resp.Height,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderDetailResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.ID = orderID

	if len(rawItems) > 0 {
		if err = json.Unmarshal(rawItems, &resp.Items); err != nil {
			return OrderDetailResponse{}, err
		}
	}

	return resp, nil
}
