package commands

import (
	"context"
	"log/slog"

	"shiprelay/internal/core/ports"
)

// TrackShipmentCommandHandler relays a tracking query to the aggregator and
// mirrors the answer onto the local shipment record.
type TrackShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    ports.ShippingGateway
	logger     *slog.Logger
}

// NewTrackShipmentCommandHandler creates a handler for tracking operations.
func NewTrackShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	gateway ports.ShippingGateway,
	logger *slog.Logger,
) TrackShipmentCommandHandler {
	return TrackShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger,
	}
}

// Handle processes the tracking command.
//
// The aggregator's snapshot is the answer; the local mirror is best effort.
// A shipment unknown locally, or a failed local write, does not fail the
// query: the caller still gets the snapshot and the mirror failure is logged.
// The stored snapshot replaces the previous one wholesale.
func (h *TrackShipmentCommandHandler) Handle(
	ctx context.Context, cmd TrackShipmentCommand) (ports.TrackingSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TrackingSnapshot{}, err
	}

	snapshot, err := h.gateway.TrackShipment(ctx, cmd.AWBCode())
	if err != nil {
		return ports.TrackingSnapshot{}, err
	}

	if err = h.mirrorSnapshot(ctx, cmd.AWBCode(), snapshot); err != nil {
		h.logger.WarnContext(ctx, "tracking snapshot not mirrored locally",
			"awb_code", cmd.AWBCode(), "error", err)
	}

	return snapshot, nil
}

func (h *TrackShipmentCommandHandler) mirrorSnapshot(
	ctx context.Context, awbCode string, snapshot ports.TrackingSnapshot) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.GetByAWBCode(ctx, awbCode)
	if err != nil {
		return err
	}

	aggregate.ApplyTracking(snapshot.CurrentStatus, snapshot.Events)

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
