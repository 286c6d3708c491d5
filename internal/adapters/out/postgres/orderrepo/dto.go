// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It handles the conversion between the order aggregate and
// its relational representation, with line items stored as a JSONB document.
package orderrepo

import (
	"encoding/json"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The merchant order id carries a unique index; duplicate intake is rejected
// at the database level even under concurrent requests.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           string    `gorm:"uniqueIndex;not null"`
	AggregatorOrderID *int64    `gorm:"index"`
	OrderDate         time.Time
	PickupLocation    string
	Billing           BillingDTO     `gorm:"embedded;embeddedPrefix:billing_"`
	Items             datatypes.JSON `gorm:"type:jsonb"`
	PaymentMethod     string
	Weight            float64
	Length            float64
	Breadth           float64
	Height            float64
	Status            string    `gorm:"index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// BillingDTO represents the embedded billing columns within the order table.
type BillingDTO struct {
	CustomerName string
	City         string
	Pincode      string
	State        string
	Country      string
	Phone        string
	Email        string
	Address      string
}

// ItemDTO is the JSONB element for one order line item.
type ItemDTO struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:         item.Name(),
			SKU:          item.SKU(),
			Units:        item.Units(),
			SellingPrice: item.SellingPrice(),
			Discount:     item.Discount(),
			Tax:          item.Tax(),
			HSN:          item.HSN(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID(),
		AggregatorOrderID: aggregate.AggregatorOrderID(),
		OrderDate:         aggregate.OrderDate(),
		PickupLocation:    aggregate.PickupLocation(),
		Billing: BillingDTO{
			CustomerName: aggregate.Billing().CustomerName(),
			City:         aggregate.Billing().City(),
			Pincode:      aggregate.Billing().Pincode(),
			State:        aggregate.Billing().State(),
			Country:      aggregate.Billing().Country(),
			Phone:        aggregate.Billing().Phone(),
			Email:        aggregate.Billing().Email(),
			Address:      aggregate.Billing().Address(),
		},
		Items:         datatypes.JSON(rawItems),
		PaymentMethod: aggregate.Payment().String(),
		Weight:        aggregate.Parcel().Weight(),
		Length:        aggregate.Parcel().Length(),
		Breadth:       aggregate.Parcel().Breadth(),
		Height:        aggregate.Parcel().Height(),
		Status:        aggregate.Status().String(),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	billing, err := order.NewBilling(
		dto.Billing.CustomerName,
		dto.Billing.City,
		dto.Billing.Pincode,
		dto.Billing.State,
		dto.Billing.Country,
		dto.Billing.Phone,
		dto.Billing.Email,
		dto.Billing.Address,
	)
	if err != nil {
		return nil, err
	}

	var itemDTOs []ItemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewItem(
			itemDTO.Name, itemDTO.SKU, itemDTO.Units,
			itemDTO.SellingPrice, itemDTO.Discount, itemDTO.Tax, itemDTO.HSN)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	parcel, err := order.NewParcel(dto.Weight, dto.Length, dto.Breadth, dto.Height)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.OrderID, dto.OrderDate, dto.PickupLocation,
		billing, items, payment, parcel, status, dto.AggregatorOrderID)
}
