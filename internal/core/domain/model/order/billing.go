package order

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

const (
	pincodeLength = 6
	phoneLength   = 10
)

// Billing is a value object holding the billing contact and address recorded
// with an order. Email and street address are optional; the remaining fields
// are required by the aggregator contract.
type Billing struct {
	customerName string
	city         string
	pincode      string
	state        string
	country      string
	phone        string
	email        string
	address      string
}

// NewBilling creates validated billing details. Pincode must be 6 digits and
// phone 10 digits, matching the aggregator's Indian postal conventions.
// An empty country defaults to "India".
func NewBilling(customerName, city, pincode, state, country, phone, email, address string) (Billing, error) {
	if customerName == "" {
		return Billing{}, errs.NewValueIsRequiredError("billing customer name")
	}
	if city == "" {
		return Billing{}, errs.NewValueIsRequiredError("billing city")
	}
	if len(pincode) != pincodeLength {
		return Billing{}, errs.NewValueIsInvalidErrorWithCause(
			"billing pincode", fmt.Errorf("%q is not %d characters", pincode, pincodeLength))
	}
	if state == "" {
		return Billing{}, errs.NewValueIsRequiredError("billing state")
	}
	if len(phone) != phoneLength {
		return Billing{}, errs.NewValueIsInvalidErrorWithCause(
			"billing phone", fmt.Errorf("%q is not %d characters", phone, phoneLength))
	}
	if country == "" {
		country = "India"
	}

	return Billing{
		customerName: customerName,
		city:         city,
		pincode:      pincode,
		state:        state,
		country:      country,
		phone:        phone,
		email:        email,
		address:      address,
	}, nil
}

// CustomerName returns the billing contact name.
func (b Billing) CustomerName() string {
	return b.customerName
}

// City returns the billing city.
func (b Billing) City() string {
	return b.city
}

// Pincode returns the billing postal code.
func (b Billing) Pincode() string {
	return b.pincode
}

// State returns the billing state.
func (b Billing) State() string {
	return b.state
}

// Country returns the billing country.
func (b Billing) Country() string {
	return b.country
}

// Phone returns the billing phone number.
func (b Billing) Phone() string {
	return b.phone
}

// Email returns the billing email, empty when not provided.
func (b Billing) Email() string {
	return b.email
}

// Address returns the billing street address, empty when not provided.
func (b Billing) Address() string {
	return b.address
}
