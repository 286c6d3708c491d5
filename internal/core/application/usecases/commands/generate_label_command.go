package commands

import (
	"errors"
	"fmt"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrGenerateLabelCommandIsNotConstructed = errors.New(
		"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
	)
)

// GenerateLabelCommand requests one label document covering a batch of
// shipments.
type GenerateLabelCommand struct {
	aggregatorShipmentIDs []int64

	guard guard.ConstructorGuard
}

// NewGenerateLabelCommand creates a validated label generation command.
// The batch must contain at least one id and every id must be positive.
func NewGenerateLabelCommand(aggregatorShipmentIDs []int64) (GenerateLabelCommand, error) {
	if len(aggregatorShipmentIDs) == 0 {
		return GenerateLabelCommand{}, errs.NewValueIsRequiredError("shipment ids")
	}

	for _, id := range aggregatorShipmentIDs {
		if id <= 0 {
			return GenerateLabelCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"shipment ids", fmt.Errorf("%d is not greater than 0", id))
		}
	}

	ids := make([]int64, len(aggregatorShipmentIDs))
	copy(ids, aggregatorShipmentIDs)

	return GenerateLabelCommand{
		aggregatorShipmentIDs: ids,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

// AggregatorShipmentIDs returns the batch of aggregator shipment ids.
// The returned slice is a copy.
func (c GenerateLabelCommand) AggregatorShipmentIDs() []int64 {
	ids := make([]int64, len(c.aggregatorShipmentIDs))
	copy(ids, c.aggregatorShipmentIDs)
	return ids
}
