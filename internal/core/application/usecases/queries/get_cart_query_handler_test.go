package queries_test

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/adapters/out/postgres/cartrepo"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCartQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartQueryHandler
}

func (suite *GetCartQueryHandlerTestSuite) SetupSuite() {
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
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
	))

	suite.handler = queries.NewGetCartQueryHandler(db)
}

func (suite *GetCartQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCartQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts, cart_items").Error)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_NoCart_ReturnsEmptyView() {
	query, err := queries.NewGetCartQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result.RestaurantID)
	suite.Empty(result.Items)
	suite.Zero(result.ItemCount)
	suite.Zero(result.Total)
	suite.Nil(result.UpdatedAt)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_FilledCart_ReturnsLinesWithTotals() {
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	suite.storeFilledCart(customerID, restaurantID)

	query, err := queries.NewGetCartQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.RestaurantID)
	suite.Equal(restaurantID, *result.RestaurantID)
	suite.Require().Len(result.Items, 2)
	suite.NotNil(result.UpdatedAt)

	// Lines come back ordered by dish name, then variant label
	suite.Equal("Burger", result.Items[0].DishName)
	suite.Equal("large", result.Items[0].VariantLabel)
	suite.Equal(2, result.Items[0].Quantity)
	suite.InDelta(12.50, result.Items[0].UnitPrice, 0.001)
	suite.InDelta(25.00, result.Items[0].Subtotal, 0.001)

	suite.Equal("Lemonade", result.Items[1].DishName)
	suite.Equal("", result.Items[1].VariantLabel)
	suite.Equal(1, result.Items[1].Quantity)
	suite.InDelta(3.00, result.Items[1].UnitPrice, 0.001)

	suite.Equal(3, result.ItemCount)
	suite.InDelta(28.00, result.Total, 0.001)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCartQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCartQuery constructor")
}

// storeFilledCart persists a cart holding a large burger (9.00 + 3.50
// modifier, twice) and one lemonade at 3.00.
func (suite *GetCartQueryHandlerTestSuite) storeFilledCart(customerID, restaurantID kernel.UUID) {
	now := time.Now()

	large, err := catalog.NewVariant("large", 3.50)
	suite.Require().NoError(err)
	burger, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Burger", 9.00, []catalog.Variant{large})
	suite.Require().NoError(err)
	lemonade, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Lemonade", 3.00, nil)
	suite.Require().NoError(err)

	aggregate, err := cart.NewCart(customerID, now)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItem(burger, "large", 2, false, now))
	suite.Require().NoError(aggregate.AddItem(lemonade, "", 1, false, now))

	repo := cartrepo.NewGormCartRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Save(context.Background(), aggregate))
}

func TestGetCartQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerTestSuite))
}
