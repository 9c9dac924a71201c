package commands_test

import (
	"context"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"

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

func (m *MockOrderRepository) Claim(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStatusHistory(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusChange), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Dish, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Dish), args.Error(1)
}

func (m *MockDishRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]catalog.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Dish), args.Error(1)
}

func (m *MockDishRepository) Save(ctx context.Context, dish catalog.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetRestaurantLocations(ctx context.Context, restaurantIDs []kernel.UUID) (map[kernel.UUID]kernel.GeoPoint, error) {
	args := m.Called(ctx, restaurantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]kernel.GeoPoint), args.Error(1)
}

func (m *MockLocationRepository) UpsertPartnerLocation(ctx context.Context, partnerID kernel.UUID, location kernel.GeoPoint, reportedAt time.Time) error {
	args := m.Called(ctx, partnerID, location, reportedAt)
	return args.Error(0)
}

func (m *MockLocationRepository) GetPartnerLocation(ctx context.Context, partnerID kernel.UUID) (kernel.GeoPoint, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

func (m *MockLocationRepository) DeleteStalePartnerLocations(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(event ports.OrderEvent) {
	m.Called(event)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
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

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
