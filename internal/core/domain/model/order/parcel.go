package order

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

// Parcel is a value object holding the physical characteristics of an order:
// weight in kilograms and optional dimensions in centimeters.
type Parcel struct {
	weight  float64
	length  float64
	breadth float64
	height  float64
}

// NewParcel creates validated parcel measurements. Weight must be positive;
// each dimension is optional but must be positive when provided (zero means
// not provided).
func NewParcel(weight, length, breadth, height float64) (Parcel, error) {
	if weight <= 0 {
		return Parcel{}, errs.NewValueIsInvalidErrorWithCause(
			"parcel weight", fmt.Errorf("%f is not greater than 0", weight))
	}

	for name, dim := range map[string]float64{
		"parcel length":  length,
		"parcel breadth": breadth,
		"parcel height":  height,
	} {
		if dim < 0 {
			return Parcel{}, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("%f is negative", dim))
		}
	}

	return Parcel{
		weight:  weight,
		length:  length,
		breadth: breadth,
		height:  height,
	}, nil
}

// Weight returns the parcel weight in kilograms.
func (p Parcel) Weight() float64 {
	return p.weight
}

// Length returns the parcel length in centimeters, zero when not provided.
func (p Parcel) Length() float64 {
	return p.length
}

// Breadth returns the parcel breadth in centimeters, zero when not provided.
func (p Parcel) Breadth() float64 {
	return p.breadth
}

// Height returns the parcel height in centimeters, zero when not provided.
func (p Parcel) Height() float64 {
	return p.height
}
