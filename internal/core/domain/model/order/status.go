package order

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

// Status represents the submission lifecycle state of an order.
//
// State transitions:
//
//	Created ──┬──> Submitted   (aggregator accepted the order)
//	          └──> Failed      (aggregator rejected the order)
//
// Both Submitted and Failed are final. Transitions never go backward.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status: the order is durably persisted but has
	// not yet been relayed to the shipping aggregator.
	Created

	// Submitted indicates the aggregator accepted the order.
	Submitted

	// Failed indicates the aggregator rejected the order after it was
	// persisted locally. The record is kept for audit.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Submitted: "submitted",
		Failed:    "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Submitted: "submitted",
		Failed:    "failed",
	}
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for anything that is not a valid stored value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the valid lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted/display name of the status.
// Implements fmt.Stringer; safe on any value including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Submit transitions the status to Submitted.
//
// Valid transitions:
//   - Created -> Submitted
//
// Submitted and Failed are final, so any other source state is rejected.
func (s Status) Submit() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s.String()),
		)
	}

	return Submitted, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Created -> Failed
//
// A submitted order can no longer fail locally; the compensating write only
// applies to orders still awaiting aggregator acceptance.
func (s Status) Fail() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return Failed, nil
}
