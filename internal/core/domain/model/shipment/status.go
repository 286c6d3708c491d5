package shipment

import (
	"fmt"

	"shiprelay/internal/pkg/errs"
)

// Status represents the fulfilment state of a shipment as driven by
// aggregator responses.
//
// State transitions:
//
//	Created ──> AWBAssigned ──> LabelGenerated ──> PickupScheduled
//
// A transition may skip forward (the aggregator can, for example, generate a
// label for a shipment we never saw an AWB assignment for) and a state may be
// re-applied (AWB reassignment, label regeneration), but the status never
// moves backward.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status: the shipment row exists because the
	// aggregator returned a shipment id on order submission.
	Created

	// AWBAssigned indicates a courier and airway bill were assigned.
	AWBAssigned

	// LabelGenerated indicates a shipping label document was produced.
	LabelGenerated

	// PickupScheduled indicates a courier pickup was scheduled.
	PickupScheduled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Created:         "created",
		AWBAssigned:     "awb_assigned",
		LabelGenerated:  "label_generated",
		PickupScheduled: "pickup_scheduled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:         "created",
		AWBAssigned:     "awb_assigned",
		LabelGenerated:  "label_generated",
		PickupScheduled: "pickup_scheduled",
	}
}

// StatusFromString parses a persisted status string back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid shipment status", s))
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

// AdvanceTo moves the status forward to target. Re-applying the current
// status is allowed; moving backward is not.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target < s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move from %s back to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
