package queries_test

import (
	"context"
	"testing"
	"time"

	"shiprelay/internal/adapters/out/postgres/orderrepo"
	"shiprelay/internal/adapters/out/postgres/shipmentrepo"
	"shiprelay/internal/core/application/usecases/queries"
	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.ListShipmentsQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
}

func (suite *ListShipmentsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
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

	suite.handler = queries.NewListShipmentsQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
}

func (suite *ListShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListShipmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, orders").Error
	suite.Require().NoError(err)
}

// buildShipment creates a created-status shipment parented to a fresh order
// row, so the order foreign key is satisfied.
func (suite *ListShipmentsQueryHandlerTestSuite) buildShipment(aggregatorShipmentID int64) *shipment.Shipment {
	orderID := kernel.NewUUID()
	dto := orderrepo.OrderDTO{
		ID:      orderID.Bytes(),
		OrderID: "ORD-" + orderID.String(),
		Items:   datatypes.JSON([]byte("[]")),
		Status:  "created",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	s, err := shipment.NewShipment(kernel.NewUUID(), orderID, aggregatorShipmentID)
	suite.Require().NoError(err)
	return s
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListShipmentsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	ctx := context.Background()
	for _, id := range []int64{9001, 9002, 9003} {
		err := suite.shipmentRepo.Add(ctx, suite.buildShipment(id))
		suite.Require().NoError(err)
		time.Sleep(10 * time.Millisecond)
	}

	query, err := queries.NewListShipmentsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(int64(9003), result[0].AggregatorShipmentID)
	suite.Equal(int64(9002), result[1].AggregatorShipmentID)
	suite.Equal(int64(9001), result[2].AggregatorShipmentID)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_MapsProgressFields() {
	ctx := context.Background()
	s := suite.buildShipment(9001)
	err := s.AssignAWB("AWB777", 17, "Delhivery")
	suite.Require().NoError(err)
	err = s.ApplyLabel("https://cdn.example.com/labels/9001.pdf")
	suite.Require().NoError(err)
	pickupDate := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)
	err = s.SchedulePickup(&pickupDate)
	suite.Require().NoError(err)
	s.ApplyTracking("In Transit", nil)

	err = suite.shipmentRepo.Add(ctx, s)
	suite.Require().NoError(err)

	query, err := queries.NewListShipmentsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(s.ID(), result[0].ID)
	suite.Equal(s.OrderID(), result[0].OrderID)
	suite.Equal(int64(9001), result[0].AggregatorShipmentID)
	suite.Equal("AWB777", result[0].AWBCode)
	suite.Equal(int64(17), result[0].CourierID)
	suite.Equal("Delhivery", result[0].CourierName)
	suite.Equal(shipment.PickupScheduled.String(), result[0].Status)
	suite.Equal("In Transit", result[0].CurrentStatus)
	suite.Equal("https://cdn.example.com/labels/9001.pdf", result[0].LabelURL)
	suite.True(result[0].PickupScheduled)
	suite.Require().NotNil(result[0].PickupDate)
	suite.True(pickupDate.Equal(*result[0].PickupDate))
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_FreshShipmentHasNoPickupDate() {
	ctx := context.Background()
	err := suite.shipmentRepo.Add(ctx, suite.buildShipment(9001))
	suite.Require().NoError(err)

	query, err := queries.NewListShipmentsQuery(0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(shipment.Created.String(), result[0].Status)
	suite.False(result[0].PickupScheduled)
	suite.Nil(result[0].PickupDate)
	suite.Empty(result[0].AWBCode)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_Pagination() {
	ctx := context.Background()
	for _, id := range []int64{9001, 9002, 9003} {
		err := suite.shipmentRepo.Add(ctx, suite.buildShipment(id))
		suite.Require().NoError(err)
		time.Sleep(10 * time.Millisecond)
	}

	query, err := queries.NewListShipmentsQuery(1, 1)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(9002), result[0].AggregatorShipmentID)
}

func (suite *ListShipmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListShipmentsQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListShipmentsQuery constructor")
}

func TestListShipmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListShipmentsQueryHandlerTestSuite))
}
