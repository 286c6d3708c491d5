package commands

import (
	"errors"
	"fmt"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrAssignAWBCommandIsNotConstructed = errors.New(
		"AssignAWBCommand must be created via NewAssignAWBCommand constructor",
	)
)

// AssignAWBCommand requests airway-bill assignment for one shipment,
// optionally pinned to a specific courier company.
type AssignAWBCommand struct {
	aggregatorShipmentID int64
	courierID            int64

	guard guard.ConstructorGuard
}

// NewAssignAWBCommand creates a validated AWB assignment command. The
// shipment id must be positive; a zero courier id lets the aggregator pick
// the courier.
func NewAssignAWBCommand(aggregatorShipmentID, courierID int64) (AssignAWBCommand, error) {
	if aggregatorShipmentID <= 0 {
		return AssignAWBCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"shipment id", fmt.Errorf("%d is not greater than 0", aggregatorShipmentID))
	}

	if courierID < 0 {
		return AssignAWBCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"courier id", fmt.Errorf("%d is negative", courierID))
	}

	return AssignAWBCommand{
		aggregatorShipmentID: aggregatorShipmentID,
		courierID:            courierID,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAWBCommand) Validate() error {
	return c.guard.Validate(ErrAssignAWBCommandIsNotConstructed)
}

// AggregatorShipmentID returns the aggregator-assigned shipment id.
func (c AssignAWBCommand) AggregatorShipmentID() int64 {
	return c.aggregatorShipmentID
}

// CourierID returns the requested courier company id, zero when the
// aggregator should pick.
func (c AssignAWBCommand) CourierID() int64 {
	return c.courierID
}
