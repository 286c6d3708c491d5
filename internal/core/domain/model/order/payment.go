package order

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

// PaymentMethod enumerates how an order is paid. The aggregator accepts
// exactly two values: prepaid and cash-on-delivery.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// Prepaid indicates payment was collected up front.
	Prepaid

	// COD indicates cash on delivery.
	COD
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Prepaid: "Prepaid",
		COD:     "COD",
	}
}

// PaymentMethodFromString parses the wire/persisted representation
// ("Prepaid" or "COD") into a PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid", fmt.Errorf("%q is not Prepaid or COD", s))
}

// Validate checks that the PaymentMethod is one of the accepted values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
