// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The tracking history is stored as a JSONB
// document and replaced wholesale on every tracking refresh.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"shiprelay/internal/adapters/out/postgres/orderrepo"
	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Both the aggregator shipment id and the AWB code are unique:
// each aggregator shipment maps to at most one local row, and an airway bill
// belongs to at most one shipment. The AWB code stays NULL until assignment
// so unassigned shipments do not collide on the unique index. Deleting an
// order cascades to its shipments.
type ShipmentDTO struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID           `gorm:"type:uuid;index;not null"`
	Order                *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	AggregatorShipmentID int64               `gorm:"uniqueIndex;not null"`
	AWBCode              *string             `gorm:"column:awb_code;uniqueIndex"`
	CourierID            int64
	CourierName          string
	Status               string `gorm:"index"`
	CurrentStatus        string
	TrackingEvents       datatypes.JSON `gorm:"type:jsonb"`
	LabelURL             string         `gorm:"column:label_url"`
	InvoiceURL           string         `gorm:"column:invoice_url"`
	ManifestURL          string         `gorm:"column:manifest_url"`
	PickupScheduled      bool
	PickupDate           *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	rawEvents, err := json.Marshal(aggregate.TrackingEvents())
	if err != nil {
		return ShipmentDTO{}, err
	}

	var awbCode *string
	if code := aggregate.AWBCode(); code != "" {
		awbCode = &code
	}

	return ShipmentDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderID:              aggregate.OrderID().Bytes(),
		AggregatorShipmentID: aggregate.AggregatorShipmentID(),
		AWBCode:              awbCode,
		CourierID:            aggregate.CourierID(),
		CourierName:          aggregate.CourierName(),
		Status:               aggregate.Status().String(),
		CurrentStatus:        aggregate.CurrentStatus(),
		TrackingEvents:       datatypes.JSON(rawEvents),
		LabelURL:             aggregate.LabelURL(),
		InvoiceURL:           aggregate.InvoiceURL(),
		ManifestURL:          aggregate.ManifestURL(),
		PickupScheduled:      aggregate.PickupScheduled(),
		PickupDate:           aggregate.PickupDate(),
	}, nil
}

// toDomain converts a database DTO back to a shipment aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var events []shipment.TrackingEvent
	if len(dto.TrackingEvents) > 0 {
		if err = json.Unmarshal(dto.TrackingEvents, &events); err != nil {
			return nil, err
		}
	}

	var awbCode string
	if dto.AWBCode != nil {
		awbCode = *dto.AWBCode
	}

	return shipment.RestoreShipment(
		id, orderID, dto.AggregatorShipmentID,
		awbCode, dto.CourierID, dto.CourierName,
		status, dto.CurrentStatus, events,
		dto.LabelURL, dto.InvoiceURL, dto.ManifestURL,
		dto.PickupScheduled, dto.PickupDate)
}
