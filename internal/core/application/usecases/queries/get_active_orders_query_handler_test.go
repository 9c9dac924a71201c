package queries_test

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/adapters/out/postgres/orderrepo"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
	))

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_changes").Error)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	customer, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	suite.Require().NoError(err)

	query, err := queries.NewGetActiveOrdersQuery(customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_CustomerScope_ExcludesTerminalAndForeignOrders() {
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	active := suite.storeOrder(customerID, restaurantID, nil, order.Preparing, time.Now())
	suite.storeOrder(customerID, restaurantID, nil, order.Completed, time.Now())
	suite.storeOrder(customerID, restaurantID, nil, order.Rejected, time.Now())
	suite.storeOrder(kernel.NewUUID(), restaurantID, nil, order.Pending, time.Now())

	customer, err := actor.NewActor(customerID, actor.Customer)
	suite.Require().NoError(err)
	query, err := queries.NewGetActiveOrdersQuery(customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID)
	suite.Equal(restaurantID, result[0].RestaurantID)
	suite.Equal(order.Preparing.String(), result[0].Status)
	suite.InDelta(active.TotalAmount(), result[0].TotalAmount, 0.001)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_DeliveryPartnerScope_ReturnsOnlyClaimedOrders() {
	partnerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	claimed := suite.storeOrder(kernel.NewUUID(), restaurantID, &partnerID, order.OutForDelivery, time.Now())
	suite.storeOrder(kernel.NewUUID(), restaurantID, nil, order.Ready, time.Now())

	partner, err := actor.NewActor(partnerID, actor.DeliveryPartner)
	suite.Require().NoError(err)
	query, err := queries.NewGetActiveOrdersQuery(partner)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(claimed.ID(), result[0].ID)
	suite.Equal(order.OutForDelivery.String(), result[0].Status)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_RestaurantScope_OrdersNewestFirst() {
	restaurantID := kernel.NewUUID()

	older := suite.storeOrder(kernel.NewUUID(), restaurantID, nil, order.Pending, time.Now().Add(-2*time.Hour))
	newer := suite.storeOrder(kernel.NewUUID(), restaurantID, nil, order.Confirmed, time.Now().Add(-time.Hour))

	restaurant, err := actor.NewActor(restaurantID, actor.Restaurant)
	suite.Require().NoError(err)
	query, err := queries.NewGetActiveOrdersQuery(restaurant)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

// storeOrder persists an order restored at the given status and returns it.
func (suite *GetActiveOrdersQueryHandlerTestSuite) storeOrder(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	partnerID *kernel.UUID,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 2, 9.50, "")
	suite.Require().NoError(err)

	stored, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		restaurantID,
		partnerID,
		status,
		[]order.LineItem{item},
		19.00,
		"742 Evergreen Terrace",
		nil,
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), stored))

	return stored
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency; query
// tests have no use for tracked aggregates.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
