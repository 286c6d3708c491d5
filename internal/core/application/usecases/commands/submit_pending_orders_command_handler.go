package commands

import (
	"context"
	"errors"
	"time"

	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/ports"
)

// SubmitPendingOrdersCommandHandler re-runs the relay step for orders stranded
// in created status. Each order goes through the same submit-and-compensate
// flow as fresh intake, so a stranded order ends up submitted or failed,
// never stuck.
type SubmitPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	submitter  orderSubmitter
}

// NewSubmitPendingOrdersCommandHandler creates a handler for the
// reconciliation pass.
func NewSubmitPendingOrdersCommandHandler(
	uowFactory UoWFactory,
	gateway ports.ShippingGateway,
) SubmitPendingOrdersCommandHandler {
	return SubmitPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		submitter:  orderSubmitter{uowFactory: uowFactory, gateway: gateway},
	}
}

// Handle processes the reconciliation command.
//
// Stranded orders are read in one transaction; each submission then runs
// outside it, writing its own outcome. A failure on one order does not stop
// the pass; all failures are joined into the returned error.
func (h *SubmitPendingOrdersCommandHandler) Handle(
	ctx context.Context, cmd SubmitPendingOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stranded, err := h.readStranded(ctx, time.Now().Add(-cmd.GracePeriod()))
	if err != nil {
		return err
	}

	var submitErrs []error
	for _, aggregate := range stranded {
		if _, submitErr := h.submitter.submit(ctx, aggregate); submitErr != nil {
			submitErrs = append(submitErrs, submitErr)
		}
	}

	return errors.Join(submitErrs...)
}

func (h *SubmitPendingOrdersCommandHandler) readStranded(
	ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stranded, err := uow.OrderRepository().GetAllInCreatedStatusBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stranded, nil
}
