// Package shiprocket implements the ShippingGateway port against the
// Shiprocket external API. The client performs one network round trip per
// operation and holds a cached bearer token that is transparently refreshed
// when the aggregator rejects it.
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"
)

const (
	defaultTimeout = 30 * time.Second

	// pickupDateLayout is the timestamp format the aggregator uses for
	// scheduled pickup dates.
	pickupDateLayout = "2006-01-02 15:04:05"

	orderDateLayout = "2006-01-02"
)

// Client is the Shiprocket implementation of the ShippingGateway port.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *tokenProvider
}

// NewClient creates a Shiprocket gateway client. The tokenTTL bounds how long
// a fetched bearer token is reused before re-authenticating; the aggregator's
// tokens outlive any sane TTL, so expiry here is a freshness bound, not a
// correctness requirement.
func NewClient(baseURL, email, password string, tokenTTL time.Duration) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     newTokenProvider(httpClient, baseURL, email, password, tokenTTL),
	}
}

// Authenticate verifies the server-held credentials against the aggregator
// and primes the token cache.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.tokens.get(ctx)
	return err
}

// CheckServiceability queries which couriers can service a postcode pair.
func (c *Client) CheckServiceability(
	ctx context.Context, req ports.ServiceabilityRequest) ([]ports.CourierOffer, error) {
	cod := 0
	if req.COD {
		cod = 1
	}

	query := url.Values{}
	query.Set("pickup_postcode", req.PickupPostcode)
	query.Set("delivery_postcode", req.DeliveryPostcode)
	query.Set("weight", fmt.Sprintf("%g", req.Weight))
	query.Set("cod", fmt.Sprintf("%d", cod))

	var resp struct {
		Data struct {
			AvailableCourierCompanies []struct {
				CourierCompanyID      int64   `json:"courier_company_id"`
				CourierName           string  `json:"courier_name"`
				Rate                  float64 `json:"rate"`
				EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
				COD                   int     `json:"cod"`
			} `json:"available_courier_companies"`
		} `json:"data"`
	}
	err := c.call(ctx, "check serviceability",
		http.MethodGet, "/courier/serviceability?"+query.Encode(), nil, &resp)
	if err != nil {
		return nil, err
	}

	offers := make([]ports.CourierOffer, 0, len(resp.Data.AvailableCourierCompanies))
	for _, courier := range resp.Data.AvailableCourierCompanies {
		offers = append(offers, ports.CourierOffer{
			CourierCompanyID:      courier.CourierCompanyID,
			CourierName:           courier.CourierName,
			Rate:                  courier.Rate,
			EstimatedDeliveryDays: courier.EstimatedDeliveryDays,
			CODAvailable:          courier.COD != 0,
		})
	}

	return offers, nil
}

// CreateOrder submits an adhoc order built from the aggregate's current
// state.
func (c *Client) CreateOrder(
	ctx context.Context, aggregate *order.Order) (ports.OrderSubmission, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.OrderSubmission{}, err
	}

	payload := orderPayload(aggregate)

	var resp struct {
		OrderID    int64  `json:"order_id"`
		ShipmentID int64  `json:"shipment_id"`
		Status     string `json:"status"`
	}
	err := c.call(ctx, "create order", http.MethodPost, "/orders/create/adhoc", payload, &resp)
	if err != nil {
		return ports.OrderSubmission{}, err
	}

	if resp.OrderID == 0 {
		return ports.OrderSubmission{}, errs.NewGatewayError(
			"create order", http.StatusOK, "response carried no order id")
	}

	return ports.OrderSubmission{
		AggregatorOrderID:    resp.OrderID,
		AggregatorShipmentID: resp.ShipmentID,
		Status:               resp.Status,
	}, nil
}

// AssignAWB requests airway-bill assignment for a shipment. A zero courierID
// is omitted from the payload, letting the aggregator pick the courier.
func (c *Client) AssignAWB(
	ctx context.Context, aggregatorShipmentID, courierID int64) (ports.AWBAssignment, error) {
	payload := map[string]int64{"shipment_id": aggregatorShipmentID}
	if courierID > 0 {
		payload["courier_id"] = courierID
	}

	var resp struct {
		Response struct {
			Data struct {
				AWBCode          string `json:"awb_code"`
				CourierCompanyID int64  `json:"courier_company_id"`
				CourierName      string `json:"courier_name"`
			} `json:"data"`
		} `json:"response"`
	}
	err := c.call(ctx, "assign awb", http.MethodPost, "/courier/assign/awb", payload, &resp)
	if err != nil {
		return ports.AWBAssignment{}, err
	}

	if resp.Response.Data.AWBCode == "" {
		return ports.AWBAssignment{}, errs.NewGatewayError(
			"assign awb", http.StatusOK, "response carried no awb code")
	}

	return ports.AWBAssignment{
		AWBCode:          resp.Response.Data.AWBCode,
		CourierCompanyID: resp.Response.Data.CourierCompanyID,
		CourierName:      resp.Response.Data.CourierName,
	}, nil
}

// GenerateLabel requests one label document covering the batch.
func (c *Client) GenerateLabel(
	ctx context.Context, aggregatorShipmentIDs []int64) (ports.LabelBatch, error) {
	payload := map[string][]int64{"shipment_id": aggregatorShipmentIDs}

	var resp struct {
		LabelURL string `json:"label_url"`
	}
	err := c.call(ctx, "generate label", http.MethodPost, "/courier/generate/label", payload, &resp)
	if err != nil {
		return ports.LabelBatch{}, err
	}

	if resp.LabelURL == "" {
		return ports.LabelBatch{}, errs.NewGatewayError(
			"generate label", http.StatusOK, "response carried no label url")
	}

	return ports.LabelBatch{LabelURL: resp.LabelURL}, nil
}

// SchedulePickup requests a courier pickup for the batch. The aggregator does
// not always announce a concrete date; the result's PickupDate is nil then.
func (c *Client) SchedulePickup(
	ctx context.Context, aggregatorShipmentIDs []int64) (ports.PickupBatch, error) {
	payload := map[string][]int64{"shipment_id": aggregatorShipmentIDs}

	var resp struct {
		Response struct {
			PickupScheduledDate string `json:"pickup_scheduled_date"`
		} `json:"response"`
	}
	err := c.call(ctx, "schedule pickup", http.MethodPost, "/courier/generate/pickup", payload, &resp)
	if err != nil {
		return ports.PickupBatch{}, err
	}

	var pickupDate *time.Time
	if resp.Response.PickupScheduledDate != "" {
		parsed, parseErr := time.Parse(pickupDateLayout, resp.Response.PickupScheduledDate)
		if parseErr == nil {
			pickupDate = &parsed
		}
	}

	return ports.PickupBatch{PickupDate: pickupDate}, nil
}

// TrackShipment fetches the latest tracking snapshot for an AWB code.
func (c *Client) TrackShipment(
	ctx context.Context, awbCode string) (ports.TrackingSnapshot, error) {
	var resp struct {
		TrackingData struct {
			ShipmentStatus string                   `json:"shipment_status"`
			ShipmentTrack  []shipment.TrackingEvent `json:"shipment_track"`
		} `json:"tracking_data"`
	}
	err := c.call(ctx, "track shipment",
		http.MethodGet, "/courier/track/awb/"+url.PathEscape(awbCode), nil, &resp)
	if err != nil {
		return ports.TrackingSnapshot{}, err
	}

	return ports.TrackingSnapshot{
		AWBCode:       awbCode,
		CurrentStatus: resp.TrackingData.ShipmentStatus,
		Events:        resp.TrackingData.ShipmentTrack,
	}, nil
}

// call performs one authenticated round trip. A 401 from the aggregator
// invalidates the cached token and replays the request exactly once with a
// fresh one.
func (c *Client) call(
	ctx context.Context, operation, method, path string, payload, out any) error {
	token, err := c.tokens.get(ctx)
	if err != nil {
		return err
	}

	status, body, err := c.roundTrip(ctx, operation, method, path, payload, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		token, err = c.tokens.refresh(ctx, token)
		if err != nil {
			return err
		}

		status, body, err = c.roundTrip(ctx, operation, method, path, payload, token)
		if err != nil {
			return err
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return errs.NewGatewayError(operation, status, string(body))
	}

	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewGatewayErrorWithCause(operation, err)
	}

	return nil
}

func (c *Client) roundTrip(
	ctx context.Context, operation, method, path string, payload any, token string,
) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errs.NewGatewayErrorWithCause(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errs.NewGatewayErrorWithCause(operation, err)
	}

	return resp.StatusCode, body, nil
}

// orderPayload flattens the aggregate into the adhoc order shape the
// aggregator expects.
func orderPayload(aggregate *order.Order) map[string]any {
	items := make([]map[string]any, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, map[string]any{
			"name":          item.Name(),
			"sku":           item.SKU(),
			"units":         item.Units(),
			"selling_price": item.SellingPrice(),
			"discount":      item.Discount(),
			"tax":           item.Tax(),
			"hsn":           item.HSN(),
		})
	}

	return map[string]any{
		"order_id":              aggregate.OrderID(),
		"order_date":            aggregate.OrderDate().Format(orderDateLayout),
		"pickup_location":       aggregate.PickupLocation(),
		"billing_customer_name": aggregate.Billing().CustomerName(),
		"billing_city":          aggregate.Billing().City(),
		"billing_pincode":       aggregate.Billing().Pincode(),
		"billing_state":         aggregate.Billing().State(),
		"billing_country":       aggregate.Billing().Country(),
		"billing_phone":         aggregate.Billing().Phone(),
		"billing_email":         aggregate.Billing().Email(),
		"billing_address":       aggregate.Billing().Address(),
		"order_items":           items,
		"payment_method":        aggregate.Payment().String(),
		"sub_total":             aggregate.SubTotal(),
		"weight":                aggregate.Parcel().Weight(),
		"length":                aggregate.Parcel().Length(),
		"breadth":               aggregate.Parcel().Breadth(),
		"height":                aggregate.Parcel().Height(),
	}
}
