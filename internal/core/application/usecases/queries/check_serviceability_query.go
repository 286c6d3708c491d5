package queries

import (
	"errors"
	"fmt"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrCheckServiceabilityQueryIsNotConstructed = errors.New(
		"CheckServiceabilityQuery must be created via NewCheckServiceabilityQuery constructor",
	)
)

const pincodeLength = 6

// CheckServiceabilityQuery asks the shipping aggregator which couriers can
// carry a parcel between two pincodes.
type CheckServiceabilityQuery struct {
	pickupPostcode   string
	deliveryPostcode string
	weight           float64
	cod              bool

	guard guard.ConstructorGuard
}

// NewCheckServiceabilityQuery creates a validated serviceability query.
// Both pincodes must be six characters long and the weight positive.
func NewCheckServiceabilityQuery(
	pickupPostcode string,
	deliveryPostcode string,
	weight float64,
	cod bool,
) (CheckServiceabilityQuery, error) {
	var failures []error

	if err := validatePincode("pickup_postcode", pickupPostcode); err != nil {
		failures = append(failures, err)
	}
	if err := validatePincode("delivery_postcode", deliveryPostcode); err != nil {
		failures = append(failures, err)
	}
	if weight <= 0 {
		failures = append(failures, errs.NewValueIsInvalidError("weight"))
	}

	if len(failures) > 0 {
		return CheckServiceabilityQuery{}, errors.Join(failures...)
	}

	return CheckServiceabilityQuery{
		pickupPostcode:   pickupPostcode,
		deliveryPostcode: deliveryPostcode,
		weight:           weight,
		cod:              cod,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func validatePincode(paramName, pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(pincode) != pincodeLength {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("must be %d characters long", pincodeLength))
	}
	return nil
}

// Validate ensures the query was created through the constructor.
func (q CheckServiceabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckServiceabilityQueryIsNotConstructed)
}

// PickupPostcode returns the origin pincode.
func (q CheckServiceabilityQuery) PickupPostcode() string {
	return q.pickupPostcode
}

// DeliveryPostcode returns the destination pincode.
func (q CheckServiceabilityQuery) DeliveryPostcode() string {
	return q.deliveryPostcode
}

// Weight returns the parcel weight in kilograms.
func (q CheckServiceabilityQuery) Weight() float64 {
	return q.weight
}

// COD reports whether cash-on-delivery couriers are requested.
func (q CheckServiceabilityQuery) COD() bool {
	return q.cod
}

// CourierOfferResponse is one courier option returned by the aggregator.
type CourierOfferResponse struct {
	CourierCompanyID      int64   `json:"courier_company_id"`
	CourierName           string  `json:"courier_name"`
	Rate                  float64 `json:"rate"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
	CODAvailable          bool    `json:"cod_available"`
}
