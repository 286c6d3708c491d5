package commands

import (
	"errors"
	"fmt"
	"time"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrSubmitPendingOrdersCommandIsNotConstructed = errors.New(
		"SubmitPendingOrdersCommand must be created via NewSubmitPendingOrdersCommand constructor",
	)
)

// SubmitPendingOrdersCommand triggers the reconciliation pass over orders
// stuck in created status: orders that were durably persisted but whose relay
// to the aggregator never completed, typically because the process died
// between the local commit and the gateway response.
//
// The grace period keeps the pass from racing freshly created orders whose
// gateway call is still in flight.
//
// Example:
//
//	cmd, _ := NewSubmitPendingOrdersCommand(5 * time.Minute)
//	handler := NewSubmitPendingOrdersCommandHandler(uowFactory, gateway)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("reconciliation pass failed: %v", err)
//	}
type SubmitPendingOrdersCommand struct {
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewSubmitPendingOrdersCommand creates a reconciliation command with the
// given grace period. The grace period must be positive.
func NewSubmitPendingOrdersCommand(gracePeriod time.Duration) (SubmitPendingOrdersCommand, error) {
	if gracePeriod <= 0 {
		return SubmitPendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"grace period", fmt.Errorf("%s is not greater than 0", gracePeriod))
	}

	return SubmitPendingOrdersCommand{
		gracePeriod: gracePeriod,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPendingOrdersCommandIsNotConstructed)
}

// GracePeriod returns how long an order must have sat in created status
// before the pass picks it up.
func (c SubmitPendingOrdersCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}
