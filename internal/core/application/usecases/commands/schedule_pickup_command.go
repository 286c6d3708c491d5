package commands

import (
	"errors"
	"fmt"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrSchedulePickupCommandIsNotConstructed = errors.New(
		"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
	)
)

// SchedulePickupCommand requests a courier pickup for a batch of shipments.
type SchedulePickupCommand struct {
	aggregatorShipmentIDs []int64

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a validated pickup scheduling command.
// The batch must contain at least one id and every id must be positive.
func NewSchedulePickupCommand(aggregatorShipmentIDs []int64) (SchedulePickupCommand, error) {
	if len(aggregatorShipmentIDs) == 0 {
		return SchedulePickupCommand{}, errs.NewValueIsRequiredError("shipment ids")
	}

	for _, id := range aggregatorShipmentIDs {
		if id <= 0 {
			return SchedulePickupCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"shipment ids", fmt.Errorf("%d is not greater than 0", id))
		}
	}

	ids := make([]int64, len(aggregatorShipmentIDs))
	copy(ids, aggregatorShipmentIDs)

	return SchedulePickupCommand{
		aggregatorShipmentIDs: ids,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// AggregatorShipmentIDs returns the batch of aggregator shipment ids.
// The returned slice is a copy.
func (c SchedulePickupCommand) AggregatorShipmentIDs() []int64 {
	ids := make([]int64, len(c.aggregatorShipmentIDs))
	copy(ids, c.aggregatorShipmentIDs)
	return ids
}
