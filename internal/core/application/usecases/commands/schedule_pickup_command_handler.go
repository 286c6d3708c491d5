package commands

import (
	"context"
	"errors"
	"time"

	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"
)

// SchedulePickupResult carries the outcome of a batch pickup scheduling: the
// pickup date the aggregator announced, when any, and the per-id local
// outcome.
type SchedulePickupResult struct {
	PickupDate *time.Time
	Items      []BatchItemResult
}

// SchedulePickupCommandHandler orchestrates batch pickup scheduling: one
// gateway call for the whole batch, then one local transaction marking every
// known shipment as scheduled.
type SchedulePickupCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    ports.ShippingGateway
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling
// operations.
func NewSchedulePickupCommandHandler(
	uowFactory ShipmentUoWFactory,
	gateway ports.ShippingGateway,
) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the pickup scheduling command.
//
// The gateway call comes first; a gateway failure leaves the local store
// untouched. Ids the aggregator accepted but the local store does not know
// are reported with Matched false rather than failing the batch.
func (h *SchedulePickupCommandHandler) Handle(
	ctx context.Context, cmd SchedulePickupCommand) (SchedulePickupResult, error) {
	if err := cmd.Validate(); err != nil {
		return SchedulePickupResult{}, err
	}

	ids := cmd.AggregatorShipmentIDs()

	batch, err := h.gateway.SchedulePickup(ctx, ids)
	if err != nil {
		return SchedulePickupResult{}, err
	}

	items, err := h.applyPickups(ctx, ids, batch.PickupDate)
	if err != nil {
		return SchedulePickupResult{}, err
	}

	return SchedulePickupResult{PickupDate: batch.PickupDate, Items: items}, nil
}

func (h *SchedulePickupCommandHandler) applyPickups(
	ctx context.Context, ids []int64, pickupDate *time.Time) ([]BatchItemResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	items := make([]BatchItemResult, 0, len(ids))
	for _, id := range ids {
		aggregate, err := shipmentRepo.GetByAggregatorShipmentID(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				items = append(items, BatchItemResult{AggregatorShipmentID: id})
				continue
			}
			return nil, err
		}

		if err = aggregate.SchedulePickup(pickupDate); err != nil {
			return nil, err
		}

		if err = shipmentRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}

		items = append(items, BatchItemResult{AggregatorShipmentID: id, Matched: true})
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return items, nil
}
