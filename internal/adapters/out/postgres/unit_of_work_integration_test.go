package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shiprelay/internal/adapters/out/postgres"
	"shiprelay/internal/adapters/out/postgres/orderrepo"
	"shiprelay/internal/adapters/out/postgres/shipmentrepo"
	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances, each providing access to both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.ShipmentRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// operations including repeated begin calls.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for commit and
// rollback without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("ORD1")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrievedOrder, err := uow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible after commit from a fresh unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_SubmissionOutcomeTransaction verifies the success write after
// aggregator acceptance: the order status update and the child shipment insert
// land atomically in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SubmissionOutcomeTransaction() {
	ctx := context.Background()

	// The durable intake write happens first, in its own transaction.
	testOrder := createTestOrder("ORD1")
	intakeUow := suite.factory.Create()
	err := intakeUow.Begin(ctx)
	suite.Require().NoError(err)
	err = intakeUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = intakeUow.Commit(ctx)
	suite.Require().NoError(err)

	// The outcome write: mark submitted and add the shipment together.
	outcomeUow := suite.factory.Create()
	err = outcomeUow.Begin(ctx)
	suite.Require().NoError(err)

	err = testOrder.MarkSubmitted(7001)
	suite.Require().NoError(err)
	err = outcomeUow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(kernel.NewUUID(), testOrder.ID(), 9001)
	suite.Require().NoError(err)
	err = outcomeUow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = outcomeUow.Commit(ctx)
	suite.Require().NoError(err)

	// Both writes are visible afterwards.
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)
	suite.Equal(order.Submitted, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.AggregatorOrderID())
	suite.Equal(int64(7001), *retrievedOrder.AggregatorOrderID())

	retrievedShipment, err := newUow.ShipmentRepository().GetByAggregatorShipmentID(ctx, 9001)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedShipment.OrderID())
	suite.Equal(shipment.Created, retrievedShipment.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes made
// across both repositories within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("ORD1")
	testShipment, err := shipment.NewShipment(kernel.NewUUID(), testOrder.ID(), 9001)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Both visible inside the transaction
	_, err = uow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)

	_, err = uow.ShipmentRepository().GetByAggregatorShipmentID(ctx, 9001)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Gone after rollback
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.ShipmentRepository().GetByAggregatorShipmentID(ctx, 9001)
	suite.Require().Error(err, "Shipment should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that transactions on separate
// unit of work instances do not see each other's uncommitted changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder("ORD1")
	order2 := createTestOrder("ORD2")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err, "UOW1 should see its own order")

	_, err = uow1.OrderRepository().GetByOrderID(ctx, "ORD2")
	suite.Require().Error(err, "UOW1 should not see UOW2's uncommitted order")

	_, err = uow2.OrderRepository().GetByOrderID(ctx, "ORD2")
	suite.Require().NoError(err, "UOW2 should see its own order")

	_, err = uow2.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().Error(err, "UOW2 should not see UOW1's uncommitted order")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err, "ORD1 should persist after commit")

	_, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD2")
	suite.Require().Error(err, "ORD2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("ORD1")

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_PartialFailureScenario verifies that a failed insert inside a
// transaction does not strand earlier successful operations after rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Existing order committed outside the transaction.
	existingOrder := createTestOrder("ORD1")
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	newOrder := createTestOrder("ORD2")
	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)

	// Duplicate merchant order id violates the unique index.
	duplicateOrder := createTestOrder("ORD1")
	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD1")
	suite.Require().NoError(err, "Existing order should still exist")

	_, err = newUow.OrderRepository().GetByOrderID(ctx, "ORD2")
	suite.Require().Error(err, "New order should not exist after rollback")
}

// TestUnitOfWork_FulfilmentWorkflow walks a shipment through the full
// fulfilment lifecycle across several transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FulfilmentWorkflow() {
	ctx := context.Background()

	// Intake and submission outcome.
	testOrder := createTestOrder("ORD1")
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.MarkSubmitted(7001))
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	testShipment, err := shipment.NewShipment(kernel.NewUUID(), testOrder.ID(), 9001)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// AWB assignment in a new transaction.
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	tracked, err := uow.ShipmentRepository().GetByAggregatorShipmentID(ctx, 9001)
	suite.Require().NoError(err)
	suite.Require().NoError(tracked.AssignAWB("AWB777", 17, "Delhivery"))
	err = uow.ShipmentRepository().Update(ctx, tracked)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Label, pickup, and tracking in a third.
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	tracked, err = uow.ShipmentRepository().GetByAWBCode(ctx, "AWB777")
	suite.Require().NoError(err)
	suite.Require().NoError(tracked.ApplyLabel("https://cdn.example.com/labels/9001.pdf"))
	pickupDate := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)
	suite.Require().NoError(tracked.SchedulePickup(&pickupDate))
	tracked.ApplyTracking("In Transit", []shipment.TrackingEvent{
		{Date: "2026-08-28 09:15:00", Status: "PKD", Activity: "Picked up", Location: "Pune"},
	})
	err = uow.ShipmentRepository().Update(ctx, tracked)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Final state.
	newUow := suite.factory.Create()
	final, err := newUow.ShipmentRepository().GetByAggregatorShipmentID(ctx, 9001)
	suite.Require().NoError(err)
	suite.Equal(shipment.PickupScheduled, final.Status())
	suite.Equal("AWB777", final.AWBCode())
	suite.Equal("https://cdn.example.com/labels/9001.pdf", final.LabelURL())
	suite.True(final.PickupScheduled())
	suite.Equal("In Transit", final.CurrentStatus())
	suite.Len(final.TrackingEvents(), 1)
}

// createTestOrder creates a valid created-status order for testing purposes.
func createTestOrder(orderID string) *order.Order {
	billing, _ := order.NewBilling(
		"Asha Verma", "Pune", "411001", "Maharashtra", "India",
		"9876543210", "asha@example.com", "12 MG Road")
	item, _ := order.NewItem("Kurta", "KRT-1", 2, 899, 50, 0, 6204)
	parcel, _ := order.NewParcel(0.5, 30, 20, 5)
	orderDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	testOrder, _ := order.NewOrder(kernel.NewUUID(), orderID, orderDate, "",
		billing, []order.Item{item}, order.Prepaid, parcel)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
