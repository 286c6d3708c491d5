package queries

import (
	"context"
	"database/sql"

	"shiprelay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of shipments from the database,
// newest first.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing
// queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing query.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			aggregator_shipment_id,
			awb_code,
			courier_id,
			courier_name,
			status,
			current_status,
			label_url,
			pickup_scheduled,
			pickup_date,
			created_at
		FROM shipments
		ORDER BY created_at DESC
		OFFSET ? LIMIT ?
	`, query.Skip(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ShipmentResponse
		var id, orderID uuid.UUID
		var awbCode sql.NullString // NULL until an AWB is assigned

		err = rows.Scan(
			&id,
			&orderID,
			&resp.AggregatorShipmentID,
			&awbCode,
			&resp.CourierID,
			&resp.CourierName,
			&resp.Status,
			&resp.CurrentStatus,
			&resp.LabelURL,
			&resp.PickupScheduled,
			&resp.PickupDate,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		resp.AWBCode = awbCode.String

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = ownerID

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
