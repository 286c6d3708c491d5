package commands

import (
	"context"

	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"
)

// AssignAWBCommandHandler orchestrates airway-bill assignment: look up the
// local shipment, ask the aggregator for an AWB, record the assignment.
type AssignAWBCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    ports.ShippingGateway
}

// NewAssignAWBCommandHandler creates a handler for AWB assignment operations.
func NewAssignAWBCommandHandler(
	uowFactory ShipmentUoWFactory,
	gateway ports.ShippingGateway,
) AssignAWBCommandHandler {
	return AssignAWBCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the AWB assignment command.
//
// The shipment is read first so an unknown id fails before any external call.
// The gateway call sits outside the write transaction; its result is recorded
// in a fresh transaction afterwards.
func (h *AssignAWBCommandHandler) Handle(
	ctx context.Context, cmd AssignAWBCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.readShipment(ctx, cmd.AggregatorShipmentID())
	if err != nil {
		return nil, err
	}

	assignment, err := h.gateway.AssignAWB(ctx, cmd.AggregatorShipmentID(), cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignAWB(
		assignment.AWBCode, assignment.CourierCompanyID, assignment.CourierName); err != nil {
		return nil, err
	}

	if err = h.writeShipment(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *AssignAWBCommandHandler) readShipment(
	ctx context.Context, aggregatorShipmentID int64) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetByAggregatorShipmentID(ctx, aggregatorShipmentID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *AssignAWBCommandHandler) writeShipment(
	ctx context.Context, aggregate *shipment.Shipment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
