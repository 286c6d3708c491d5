package queries

import (
	"context"

	"shiprelay/internal/core/ports"
)

// CheckServiceabilityQueryHandler relays serviceability lookups to the
// shipping aggregator. Nothing is persisted; courier offers are point-in-time
// quotes and go stale quickly.
type CheckServiceabilityQueryHandler struct {
	gateway ports.ShippingGateway
}

// NewCheckServiceabilityQueryHandler creates a handler for serviceability
// queries.
func NewCheckServiceabilityQueryHandler(
	gateway ports.ShippingGateway,
) CheckServiceabilityQueryHandler {
	return CheckServiceabilityQueryHandler{gateway: gateway}
}

// Handle asks the aggregator for courier options. An empty slice means no
// courier serves the lane; it is not an error.
func (h CheckServiceabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckServiceabilityQuery,
) ([]CourierOfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers, err := h.gateway.CheckServiceability(ctx, ports.ServiceabilityRequest{
		PickupPostcode:   query.PickupPostcode(),
		DeliveryPostcode: query.DeliveryPostcode(),
		Weight:           query.Weight(),
		COD:              query.COD(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]CourierOfferResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, CourierOfferResponse{
			CourierCompanyID:      offer.CourierCompanyID,
			CourierName:           offer.CourierName,
			Rate:                  offer.Rate,
			EstimatedDeliveryDays: offer.EstimatedDeliveryDays,
			CODAvailable:          offer.CODAvailable,
		})
	}

	return responses, nil
}
