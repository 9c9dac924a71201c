package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/adapters/out/postgres/cartrepo"
	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CartRepositoryIntegrationTestSuite provides integration tests for CartRepository
// using PostgreSQL containers to verify database persistence behavior.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts, cart_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestSaveAndGet_RoundTripsCart() {
	ctx := context.Background()

	filled := suite.fillCart()
	suite.tracker.On("TrackAggregate", filled.CustomerID(), filled).Once()
	suite.Require().NoError(suite.repository.Save(ctx, filled))

	retrieved, err := suite.repository.Get(ctx, filled.CustomerID())
	suite.Require().NoError(err)

	suite.Equal(filled.CustomerID(), retrieved.CustomerID())
	suite.Require().NotNil(retrieved.RestaurantID())
	suite.True(retrieved.RestaurantID().IsEqual(*filled.RestaurantID()))
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal(filled.ItemCount(), retrieved.ItemCount())
	suite.InDelta(filled.Total(), retrieved.Total(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ExistingCart_ReplacesLines() {
	ctx := context.Background()

	filled := suite.fillCart()
	suite.tracker.On("TrackAggregate", filled.CustomerID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Save(ctx, filled))

	// Mutate and save again: one line removed
	items := filled.Items()
	suite.Require().NoError(filled.RemoveItem(items[0].DishID(), items[0].VariantLabel(), time.Now()))
	suite.Require().NoError(suite.repository.Save(ctx, filled))

	retrieved, err := suite.repository.Get(ctx, filled.CustomerID())
	suite.Require().NoError(err)
	suite.Len(retrieved.Items(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_NonExistentCart_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDelete_RemovesCartAndLines() {
	ctx := context.Background()

	filled := suite.fillCart()
	suite.tracker.On("TrackAggregate", filled.CustomerID(), filled).Once()
	suite.Require().NoError(suite.repository.Save(ctx, filled))

	suite.Require().NoError(suite.repository.Delete(ctx, filled.CustomerID()))

	_, err := suite.repository.Get(ctx, filled.CustomerID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&cartrepo.CartItemDTO{}).Count(&lineCount).Error)
	suite.Zero(lineCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDelete_AbsentCart_IsNoOp() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Delete(ctx, kernel.NewUUID()))
	suite.tracker.AssertExpectations(suite.T())
}

// fillCart creates a cart holding two lines from the same restaurant.
func (suite *CartRepositoryIntegrationTestSuite) fillCart() *cart.Cart {
	restaurantID := kernel.NewUUID()

	large, err := catalog.NewVariant("large", 3.50)
	suite.Require().NoError(err)
	burger, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Burger", 9.00, []catalog.Variant{large})
	suite.Require().NoError(err)
	drink, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Lemonade", 3.00, nil)
	suite.Require().NoError(err)

	filled, err := cart.NewCart(kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(filled.AddItem(burger, "large", 2, false, time.Now()))
	suite.Require().NoError(filled.AddItem(drink, "", 1, false, time.Now()))

	return filled
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
