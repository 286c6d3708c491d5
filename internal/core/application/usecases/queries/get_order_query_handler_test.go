package queries_test

import (
	"context"
	"testing"
	"time"

	"shiprelay/internal/adapters/out/postgres/orderrepo"
	"shiprelay/internal/core/application/usecases/queries"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullDetail() {
	ctx := context.Background()
	o := buildOrder(suite.T(), "ORD42")
	err := suite.orderRepo.Add(ctx, o)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery("ORD42")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), result.ID)
	suite.Equal("ORD42", result.OrderID)
	suite.Nil(result.AggregatorOrderID)
	suite.Equal(order.Created.String(), result.Status)
	suite.Equal("Primary", result.PickupLocation)
	suite.Equal("Asha Verma", result.CustomerName)
	suite.Equal("Pune", result.City)
	suite.Equal("411001", result.Pincode)
	suite.Equal("Maharashtra", result.State)
	suite.Equal("India", result.Country)
	suite.Equal("9876543210", result.Phone)
	suite.Equal("asha@example.com", result.Email)
	suite.Equal("12 MG Road", result.Address)
	suite.Equal("Prepaid", result.PaymentMethod)
	suite.InDelta(0.5, result.Weight, 0.0001)
	suite.InDelta(30, result.Length, 0.0001)
	suite.InDelta(20, result.Breadth, 0.0001)
	suite.InDelta(5, result.Height, 0.0001)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Kurta", result.Items[0].Name)
	suite.Equal("KRT-1", result.Items[0].SKU)
	suite.Equal(2, result.Items[0].Units)
	suite.InDelta(899, result.Items[0].SellingPrice, 0.0001)
	suite.InDelta(50, result.Items[0].Discount, 0.0001)
	suite.Equal(6204, result.Items[0].HSN)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrderID_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery("ORD404")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
