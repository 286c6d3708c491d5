package queries

import (
	"context"

	"shiprelay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database,
// newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			aggregator_order_id,
			status,
			order_date,
			payment_method,
			billing_customer_name,
			created_at
		FROM orders
		ORDER BY created_at DESC
		OFFSET ? LIMIT ?
	`, query.Skip(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.AggregatorOrderID,
			&resp.Status,
			&resp.OrderDate,
			&resp.PaymentMethod,
			&resp.CustomerName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
