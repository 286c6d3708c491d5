package commands_test

import (
	"context"
	"time"

	"shiprelay/internal/core/application/usecases/commands"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInCreatedStatusBefore(
	ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetByAggregatorShipmentID(
	ctx context.Context, aggregatorShipmentID int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, aggregatorShipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByAWBCode(ctx context.Context, awbCode string) (*shipment.Shipment, error) {
	args := m.Called(ctx, awbCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockShippingGateway struct{ mock.Mock }

func (m *MockShippingGateway) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShippingGateway) CheckServiceability(
	ctx context.Context, req ports.ServiceabilityRequest) ([]ports.CourierOffer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CourierOffer), args.Error(1)
}

func (m *MockShippingGateway) CreateOrder(
	ctx context.Context, aggregate *order.Order) (ports.OrderSubmission, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(ports.OrderSubmission), args.Error(1)
}

func (m *MockShippingGateway) AssignAWB(
	ctx context.Context, aggregatorShipmentID, courierID int64) (ports.AWBAssignment, error) {
	args := m.Called(ctx, aggregatorShipmentID, courierID)
	return args.Get(0).(ports.AWBAssignment), args.Error(1)
}

func (m *MockShippingGateway) GenerateLabel(
	ctx context.Context, aggregatorShipmentIDs []int64) (ports.LabelBatch, error) {
	args := m.Called(ctx, aggregatorShipmentIDs)
	return args.Get(0).(ports.LabelBatch), args.Error(1)
}

func (m *MockShippingGateway) SchedulePickup(
	ctx context.Context, aggregatorShipmentIDs []int64) (ports.PickupBatch, error) {
	args := m.Called(ctx, aggregatorShipmentIDs)
	return args.Get(0).(ports.PickupBatch), args.Error(1)
}

func (m *MockShippingGateway) TrackShipment(
	ctx context.Context, awbCode string) (ports.TrackingSnapshot, error) {
	args := m.Called(ctx, awbCode)
	return args.Get(0).(ports.TrackingSnapshot), args.Error(1)
}
