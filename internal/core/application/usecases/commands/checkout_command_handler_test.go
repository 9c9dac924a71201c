package commands_test

import (
	"testing"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test helper functions shared by the handler tests in this package.
func createDish(t *testing.T, restaurantID kernel.UUID) catalog.Dish {
	t.Helper()

	d, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Margherita", 9.50, nil)
	require.NoError(t, err)
	return d
}

func createFilledCart(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(customerID, time.Now())
	require.NoError(t, err)
	require.NoError(t, c.AddItem(createDish(t, kernel.NewUUID()), "", 2, false, time.Now()))
	return c
}

func createReadyOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 1, 10.00, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, "1 Main Street", time.Now())
	require.NoError(t, err)

	restaurant, err := actor.NewActor(o.RestaurantID(), actor.Restaurant)
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(order.Confirmed, restaurant, time.Now()))
	require.NoError(t, o.TransitionTo(order.Preparing, restaurant, time.Now()))
	require.NoError(t, o.TransitionTo(order.Ready, restaurant, time.Now()))
	return o
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, "1 Main Street")
	require.NoError(t, err)

	filledCart := createFilledCart(t, customerID)

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, customerID).Return(filledCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Delete", mock.Anything, customerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.AnythingOfType("ports.OrderEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)

	// The created order mirrors the cart contents.
	created := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	require.Equal(t, order.Pending, created.Status())
	require.True(t, created.CustomerID().IsEqual(customerID))
	require.True(t, created.RestaurantID().IsEqual(*filledCart.RestaurantID()))
	require.InDelta(t, filledCart.Total(), created.TotalAmount(), 0.001)

	// The published event announces the pending order.
	event := publisher.Calls[0].Arguments.Get(0).(ports.OrderEvent)
	require.True(t, event.OrderID.IsEqual(created.ID()))
	require.Equal(t, order.Pending, event.Status)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, "1 Main Street")
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(customerID, time.Now())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCheckoutCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	publisher := new(MockPublisher)

	h := commands.NewCheckoutCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
