package order

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

// Item is a value object describing a single order line: product name, SKU,
// unit count and per-unit pricing. Discount, tax and HSN code are optional.
type Item struct {
	name         string
	sku          string
	units        int
	sellingPrice float64
	discount     float64
	tax          float64
	hsn          int
}

// NewItem creates a validated order line item.
// Name and SKU are required, units and selling price must be positive,
// discount and tax must not be negative. HSN is a free-form tariff code
// and may be zero.
func NewItem(name, sku string, units int, sellingPrice, discount, tax float64, hsn int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("item sku")
	}
	if units <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item units", fmt.Errorf("%d is not greater than 0", units))
	}
	if sellingPrice <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item selling price", fmt.Errorf("%f is not greater than 0", sellingPrice))
	}
	if discount < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item discount", fmt.Errorf("%f is negative", discount))
	}
	if tax < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item tax", fmt.Errorf("%f is negative", tax))
	}

	return Item{
		name:         name,
		sku:          sku,
		units:        units,
		sellingPrice: sellingPrice,
		discount:     discount,
		tax:          tax,
		hsn:          hsn,
	}, nil
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// SKU returns the product SKU.
func (i Item) SKU() string {
	return i.sku
}

// Units returns the ordered unit count.
func (i Item) Units() int {
	return i.units
}

// SellingPrice returns the per-unit selling price.
func (i Item) SellingPrice() float64 {
	return i.sellingPrice
}

// Discount returns the discount amount.
func (i Item) Discount() float64 {
	return i.discount
}

// Tax returns the tax amount.
func (i Item) Tax() float64 {
	return i.tax
}

// HSN returns the tariff classification code, zero when not provided.
func (i Item) HSN() int {
	return i.hsn
}
