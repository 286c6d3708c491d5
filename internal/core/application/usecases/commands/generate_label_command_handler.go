package commands

import (
	"context"
	"errors"

	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"
)

// GenerateLabelResult carries the outcome of a batch label generation: the
// single document URL covering the batch and the per-id local outcome.
type GenerateLabelResult struct {
	LabelURL string
	Items    []BatchItemResult
}

// GenerateLabelCommandHandler orchestrates batch label generation: one
// gateway call for the whole batch, then one local transaction recording the
// label URL on every shipment the store knows.
type GenerateLabelCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    ports.ShippingGateway
}

// NewGenerateLabelCommandHandler creates a handler for label generation
// operations.
func NewGenerateLabelCommandHandler(
	uowFactory ShipmentUoWFactory,
	gateway ports.ShippingGateway,
) GenerateLabelCommandHandler {
	return GenerateLabelCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the label generation command.
//
// The gateway call comes first; a gateway failure leaves the local store
// untouched. Ids the aggregator accepted but the local store does not know
// are reported with Matched false rather than failing the batch.
func (h *GenerateLabelCommandHandler) Handle(
	ctx context.Context, cmd GenerateLabelCommand) (GenerateLabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateLabelResult{}, err
	}

	ids := cmd.AggregatorShipmentIDs()

	batch, err := h.gateway.GenerateLabel(ctx, ids)
	if err != nil {
		return GenerateLabelResult{}, err
	}

	items, err := h.applyLabels(ctx, ids, batch.LabelURL)
	if err != nil {
		return GenerateLabelResult{}, err
	}

	return GenerateLabelResult{LabelURL: batch.LabelURL, Items: items}, nil
}

func (h *GenerateLabelCommandHandler) applyLabels(
	ctx context.Context, ids []int64, labelURL string) ([]BatchItemResult, error) {
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

		if err = aggregate.ApplyLabel(labelURL); err != nil {
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
