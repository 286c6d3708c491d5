package commands

import (
	"context"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"
)

// orderSubmitter runs the shared submit-and-reconcile flow for an order that
// is already durably persisted in created status: relay it to the gateway,
// then record the outcome in a fresh transaction.
//
// The flow is shared between CreateOrderCommandHandler (submit right after
// intake) and SubmitPendingOrdersCommandHandler (reconciliation pass for
// orders stranded in created status).
type orderSubmitter struct {
	uowFactory UoWFactory
	gateway    ports.ShippingGateway
}

// submit relays the order to the aggregator and applies the compensating
// status write. On gateway acceptance the order becomes submitted and, if the
// response carried a shipment id, the child shipment is inserted in the same
// transaction. On gateway failure the order becomes failed, the record is
// kept for audit, and the gateway error is returned to the caller.
//
// Returns the created child shipment, or nil when the response carried no
// shipment id.
func (s orderSubmitter) submit(ctx context.Context, aggregate *order.Order) (*shipment.Shipment, error) {
	submission, gatewayErr := s.gateway.CreateOrder(ctx, aggregate)
	if gatewayErr != nil {
		if err := s.markFailed(ctx, aggregate); err != nil {
			return nil, err
		}
		return nil, gatewayErr
	}

	return s.markSubmitted(ctx, aggregate, submission)
}

func (s orderSubmitter) markFailed(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.MarkFailed(); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (s orderSubmitter) markSubmitted(
	ctx context.Context,
	aggregate *order.Order,
	submission ports.OrderSubmission,
) (*shipment.Shipment, error) {
	if err := aggregate.MarkSubmitted(submission.AggregatorOrderID); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	var child *shipment.Shipment
	if submission.AggregatorShipmentID > 0 {
		var err error
		child, err = shipment.NewShipment(kernel.NewUUID(), aggregate.ID(), submission.AggregatorShipmentID)
		if err != nil {
			return nil, err
		}

		if err = uow.ShipmentRepository().Add(ctx, child); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return child, nil
}
