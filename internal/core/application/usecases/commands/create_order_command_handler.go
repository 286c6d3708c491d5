package commands

import (
	"context"
	"errors"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"
)

// CreateOrderResult carries the outcome of an accepted order creation: the
// persisted order and, when the aggregator's response carried a shipment id,
// the child shipment created alongside it.
type CreateOrderResult struct {
	Order    *order.Order
	Shipment *shipment.Shipment
}

// CreateOrderCommandHandler handles the business logic for order intake.
// Persists the order in created status first, then relays it to the shipping
// aggregator and records the outcome.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gateway)
//	cmd, _ := NewCreateOrderCommand(params)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.Order is submitted; result.Shipment may be nil
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	submitter  orderSubmitter
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence and the shipping
// gateway for the relay step.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	gateway ports.ShippingGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		submitter:  orderSubmitter{uowFactory: uowFactory, gateway: gateway},
	}
}

// Handle processes the order intake command.
//
// The order is committed in created status before the gateway is contacted,
// so a crash mid-flight leaves a durable record for the reconciliation pass.
// Gateway rejection marks the order failed and surfaces the gateway error;
// a duplicate merchant order id surfaces as a ConflictError.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := h.persistCreated(ctx, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	child, err := h.submitter.submit(ctx, aggregate)
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Order: aggregate, Shipment: child}, nil
}

func (h *CreateOrderCommandHandler) persistCreated(
	ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("order_id", cmd.OrderID())
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.OrderDate(),
		cmd.PickupLocation(),
		cmd.Billing(),
		cmd.Items(),
		cmd.Payment(),
		cmd.Parcel(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
