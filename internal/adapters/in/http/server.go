// Package http provides the inbound REST adapter. Handlers translate JSON
// requests into commands and queries, and application errors into HTTP status
// codes; no business logic lives here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"shiprelay/internal/core/application/usecases/commands"
	"shiprelay/internal/core/application/usecases/queries"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	dateLayout       = "2006-01-02"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler          commands.LoginCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	assignAWBHandler      commands.AssignAWBCommandHandler
	generateLabelHandler  commands.GenerateLabelCommandHandler
	schedulePickupHandler commands.SchedulePickupCommandHandler
	trackShipmentHandler  commands.TrackShipmentCommandHandler

	// Query handlers
	listOrdersHandler          queries.ListOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	listShipmentsHandler       queries.ListShipmentsQueryHandler
	checkServiceabilityHandler queries.CheckServiceabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignAWBHandler commands.AssignAWBCommandHandler,
	generateLabelHandler commands.GenerateLabelCommandHandler,
	schedulePickupHandler commands.SchedulePickupCommandHandler,
	trackShipmentHandler commands.TrackShipmentCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	checkServiceabilityHandler queries.CheckServiceabilityQueryHandler,
) *Server {
	return &Server{
		loginHandler:               loginHandler,
		createOrderHandler:         createOrderHandler,
		assignAWBHandler:           assignAWBHandler,
		generateLabelHandler:       generateLabelHandler,
		schedulePickupHandler:      schedulePickupHandler,
		trackShipmentHandler:       trackShipmentHandler,
		listOrdersHandler:          listOrdersHandler,
		getOrderHandler:            getOrderHandler,
		listShipmentsHandler:       listShipmentsHandler,
		checkServiceabilityHandler: checkServiceabilityHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance. All routes
// except login and health require a bearer session token.
func (s *Server) RegisterRoutes(e *echo.Echo, signer ports.TokenSigner) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	protected := api.Group("", BearerAuth(signer))
	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders", s.GetOrders)
	protected.GET("/orders/:order_id", s.GetOrder)
	protected.GET("/shipments", s.GetShipments)
	protected.GET("/shipments/serviceability", s.CheckServiceability)
	protected.POST("/shipments/assign-awb", s.AssignAWB)
	protected.POST("/shipments/generate-label", s.GenerateLabel)
	protected.POST("/shipments/schedule-pickup", s.SchedulePickup)
	protected.GET("/shipments/track/:awb_code", s.TrackShipment)
}

// LoginRequest is the credential payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the minted session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/v1/auth/login - verifies local credentials and
// mints a session token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	session, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// CreateOrderRequest is the intake payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderID        string `json:"order_id"`
	OrderDate      string `json:"order_date"`
	PickupLocation string `json:"pickup_location"`

	BillingCustomerName string `json:"billing_customer_name"`
	BillingCity         string `json:"billing_city"`
	BillingPincode      string `json:"billing_pincode"`
	BillingState        string `json:"billing_state"`
	BillingCountry      string `json:"billing_country"`
	BillingPhone        string `json:"billing_phone"`
	BillingEmail        string `json:"billing_email"`
	BillingAddress      string `json:"billing_address"`

	Items []CreateOrderItemRequest `json:"order_items"`

	PaymentMethod string  `json:"payment_method"`
	Weight        float64 `json:"weight"`
	Length        float64 `json:"length"`
	Breadth       float64 `json:"breadth"`
	Height        float64 `json:"height"`
}

// CreateOrderItemRequest is one order line in the intake payload.
type CreateOrderItemRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

// OrderView is the order representation returned by write endpoints.
type OrderView struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	AggregatorOrderID *int64 `json:"aggregator_order_id"`
	Status            string `json:"status"`
}

// ShipmentView is the shipment representation returned by write endpoints.
type ShipmentView struct {
	ID                   string  `json:"id"`
	OrderID              string  `json:"order_id"`
	AggregatorShipmentID int64   `json:"aggregator_shipment_id"`
	AWBCode              string  `json:"awb_code,omitempty"`
	CourierID            int64   `json:"courier_id,omitempty"`
	CourierName          string  `json:"courier_name,omitempty"`
	Status               string  `json:"status"`
	LabelURL             string  `json:"label_url,omitempty"`
	PickupScheduled      bool    `json:"pickup_scheduled"`
	PickupDate           *string `json:"pickup_date,omitempty"`
}

// CreateOrderResponse is the body returned by POST /api/v1/orders.
type CreateOrderResponse struct {
	Order    OrderView     `json:"order"`
	Shipment *ShipmentView `json:"shipment,omitempty"`
}

// CreateOrder handles POST /api/v1/orders - records a merchant order and
// relays it to the shipping aggregator.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateOrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItemParams{
			Name:         item.Name,
			SKU:          item.SKU,
			Units:        item.Units,
			SellingPrice: item.SellingPrice,
			Discount:     item.Discount,
			Tax:          item.Tax,
			HSN:          item.HSN,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		OrderID:             req.OrderID,
		OrderDate:           req.OrderDate,
		PickupLocation:      req.PickupLocation,
		BillingCustomerName: req.BillingCustomerName,
		BillingCity:         req.BillingCity,
		BillingPincode:      req.BillingPincode,
		BillingState:        req.BillingState,
		BillingCountry:      req.BillingCountry,
		BillingPhone:        req.BillingPhone,
		BillingEmail:        req.BillingEmail,
		BillingAddress:      req.BillingAddress,
		Items:               items,
		PaymentMethod:       req.PaymentMethod,
		Weight:              req.Weight,
		Length:              req.Length,
		Breadth:             req.Breadth,
		Height:              req.Height,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CreateOrderResponse{Order: orderView(result.Order)}
	if result.Shipment != nil {
		view := shipmentView(result.Shipment)
		response.Shipment = &view
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	skip, limit, err := pageParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:                o.ID.String(),
			OrderID:           o.OrderID,
			AggregatorOrderID: o.AggregatorOrderID,
			Status:            o.Status,
			OrderDate:         o.OrderDate.Format(dateLayout),
			PaymentMethod:     o.PaymentMethod,
			CustomerName:      o.CustomerName,
			CreatedAt:         o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderSummary is one row of the order listing response.
type OrderSummary struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	AggregatorOrderID *int64    `json:"aggregator_order_id"`
	Status            string    `json:"status"`
	OrderDate         string    `json:"order_date"`
	PaymentMethod     string    `json:"payment_method"`
	CustomerName      string    `json:"customer_name"`
	CreatedAt         time.Time `json:"created_at"`
}

// GetOrder handles GET /api/v1/orders/:order_id - returns the full order
// detail by merchant order id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("order_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetail(detail))
}

// OrderDetail is the full order view returned by GET /api/v1/orders/:order_id.
type OrderDetail struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	AggregatorOrderID *int64 `json:"aggregator_order_id"`
	Status            string `json:"status"`
	OrderDate         string `json:"order_date"`
	PickupLocation    string `json:"pickup_location"`

	BillingCustomerName string `json:"billing_customer_name"`
	BillingCity         string `json:"billing_city"`
	BillingPincode      string `json:"billing_pincode"`
	BillingState        string `json:"billing_state"`
	BillingCountry      string `json:"billing_country"`
	BillingPhone        string `json:"billing_phone"`
	BillingEmail        string `json:"billing_email"`
	BillingAddress      string `json:"billing_address"`

	Items []queries.OrderItemResponse `json:"order_items"`

	PaymentMethod string    `json:"payment_method"`
	Weight        float64   `json:"weight"`
	Length        float64   `json:"length"`
	Breadth       float64   `json:"breadth"`
	Height        float64   `json:"height"`
	CreatedAt     time.Time `json:"created_at"`
}

func orderDetail(resp queries.OrderDetailResponse) OrderDetail {
	return OrderDetail{
		ID:                  resp.ID.String(),
		OrderID:             resp.OrderID,
		AggregatorOrderID:   resp.AggregatorOrderID,
		Status:              resp.Status,
		OrderDate:           resp.OrderDate.Format(dateLayout),
		PickupLocation:      resp.PickupLocation,
		BillingCustomerName: resp.CustomerName,
		BillingCity:         resp.City,
		BillingPincode:      resp.Pincode,
		BillingState:        resp.State,
		BillingCountry:      resp.Country,
		BillingPhone:        resp.Phone,
		BillingEmail:        resp.Email,
		BillingAddress:      resp.Address,
		Items:               resp.Items,
		PaymentMethod:       resp.PaymentMethod,
		Weight:              resp.Weight,
		Length:              resp.Length,
		Breadth:             resp.Breadth,
		Height:              resp.Height,
		CreatedAt:           resp.CreatedAt,
	}
}

// GetShipments handles GET /api/v1/shipments - lists shipments, newest first.
func (s *Server) GetShipments(ctx echo.Context) error {
	skip, limit, err := pageParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentSummary, len(shipments))
	for i, sh := range shipments {
		response[i] = ShipmentSummary{
			ID:                   sh.ID.String(),
			OrderID:              sh.OrderID.String(),
			AggregatorShipmentID: sh.AggregatorShipmentID,
			AWBCode:              sh.AWBCode,
			CourierID:            sh.CourierID,
			CourierName:          sh.CourierName,
			Status:               sh.Status,
			CurrentStatus:        sh.CurrentStatus,
			LabelURL:             sh.LabelURL,
			PickupScheduled:      sh.PickupScheduled,
			PickupDate:           sh.PickupDate,
			CreatedAt:            sh.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ShipmentSummary is one row of the shipment listing response.
type ShipmentSummary struct {
	ID                   string     `json:"id"`
	OrderID              string     `json:"order_id"`
	AggregatorShipmentID int64      `json:"aggregator_shipment_id"`
	AWBCode              string     `json:"awb_code"`
	CourierID            int64      `json:"courier_id"`
	CourierName          string     `json:"courier_name"`
	Status               string     `json:"status"`
	CurrentStatus        string     `json:"current_status"`
	LabelURL             string     `json:"label_url"`
	PickupScheduled      bool       `json:"pickup_scheduled"`
	PickupDate           *time.Time `json:"pickup_date"`
	CreatedAt            time.Time  `json:"created_at"`
}

// CheckServiceability handles GET /api/v1/shipments/serviceability - relays a
// courier serviceability lookup to the aggregator.
func (s *Server) CheckServiceability(ctx echo.Context) error {
	weight, err := strconv.ParseFloat(ctx.QueryParam("weight"), 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "weight must be a number",
		})
	}
	cod := ctx.QueryParam("cod") == "1" || ctx.QueryParam("cod") == "true"

	query, err := queries.NewCheckServiceabilityQuery(
		ctx.QueryParam("pickup_postcode"),
		ctx.QueryParam("delivery_postcode"),
		weight,
		cod,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	offers, err := s.checkServiceabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offers)
}

// AssignAWBRequest is the payload for POST /api/v1/shipments/assign-awb.
// CourierID zero lets the aggregator pick the courier.
type AssignAWBRequest struct {
	AggregatorShipmentID int64 `json:"shipment_id"`
	CourierID            int64 `json:"courier_id"`
}

// AssignAWB handles POST /api/v1/shipments/assign-awb - requests airway-bill
// assignment for one shipment.
func (s *Server) AssignAWB(ctx echo.Context) error {
	var req AssignAWBRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignAWBCommand(req.AggregatorShipmentID, req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignAWBHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentView(assigned))
}

// BatchRequest is the payload for the label and pickup batch endpoints.
type BatchRequest struct {
	AggregatorShipmentIDs []int64 `json:"shipment_ids"`
}

// BatchItem reports the local outcome for one shipment id of a batch.
type BatchItem struct {
	AggregatorShipmentID int64 `json:"shipment_id"`
	Matched              bool  `json:"matched"`
}

// GenerateLabelResponse is the body returned by the label batch endpoint.
type GenerateLabelResponse struct {
	LabelURL string      `json:"label_url"`
	Items    []BatchItem `json:"items"`
}

// GenerateLabel handles POST /api/v1/shipments/generate-label - requests one
// label document for a batch of shipments.
func (s *Server) GenerateLabel(ctx echo.Context) error {
	var req BatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewGenerateLabelCommand(req.AggregatorShipmentIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.generateLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GenerateLabelResponse{
		LabelURL: result.LabelURL,
		Items:    batchItems(result.Items),
	})
}

// SchedulePickupResponse is the body returned by the pickup batch endpoint.
type SchedulePickupResponse struct {
	PickupDate *string     `json:"pickup_date"`
	Items      []BatchItem `json:"items"`
}

// SchedulePickup handles POST /api/v1/shipments/schedule-pickup - requests a
// courier pickup for a batch of shipments.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	var req BatchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSchedulePickupCommand(req.AggregatorShipmentIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SchedulePickupResponse{
		PickupDate: formatPickupDate(result.PickupDate),
		Items:      batchItems(result.Items),
	})
}

// TrackingResponse is the body returned by the tracking endpoint.
type TrackingResponse struct {
	AWBCode       string                   `json:"awb_code"`
	CurrentStatus string                   `json:"current_status"`
	Events        []shipment.TrackingEvent `json:"events"`
}

// TrackShipment handles GET /api/v1/shipments/track/:awb_code - fetches the
// aggregator's latest tracking snapshot and mirrors it locally.
func (s *Server) TrackShipment(ctx echo.Context) error {
	cmd, err := commands.NewTrackShipmentCommand(ctx.Param("awb_code"))
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		AWBCode:       snapshot.AWBCode,
		CurrentStatus: snapshot.CurrentStatus,
		Events:        snapshot.Events,
	})
}

func pageParams(ctx echo.Context) (skip, limit int, err error) {
	skip = 0
	if raw := ctx.QueryParam("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("skip", err)
		}
	}

	limit = defaultPageLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
	}

	return skip, limit, nil
}

func orderView(o *order.Order) OrderView {
	return OrderView{
		ID:                o.ID().String(),
		OrderID:           o.OrderID(),
		AggregatorOrderID: o.AggregatorOrderID(),
		Status:            o.Status().String(),
	}
}

func shipmentView(sh *shipment.Shipment) ShipmentView {
	return ShipmentView{
		ID:                   sh.ID().String(),
		OrderID:              sh.OrderID().String(),
		AggregatorShipmentID: sh.AggregatorShipmentID(),
		AWBCode:              sh.AWBCode(),
		CourierID:            sh.CourierID(),
		CourierName:          sh.CourierName(),
		Status:               sh.Status().String(),
		LabelURL:             sh.LabelURL(),
		PickupScheduled:      sh.PickupScheduled(),
		PickupDate:           formatPickupDate(sh.PickupDate()),
	}
}

func batchItems(items []commands.BatchItemResult) []BatchItem {
	result := make([]BatchItem, len(items))
	for i, item := range items {
		result[i] = BatchItem{
			AggregatorShipmentID: item.AggregatorShipmentID,
			Matched:              item.Matched,
		}
	}
	return result
}

func formatPickupDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(dateLayout)
	return &formatted
}
