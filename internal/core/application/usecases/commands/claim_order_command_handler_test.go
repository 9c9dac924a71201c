package commands_test

import (
	"testing"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	readyOrder := createReadyOrder(t)
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(readyOrder.ID(), partnerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, readyOrder.ID()).Return(readyOrder, nil).Once(),
		orderRepo.On("Claim", mock.Anything, readyOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.AnythingOfType("ports.OrderEvent")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)

	require.Equal(t, order.Assigned, readyOrder.Status())
	require.NotNil(t, readyOrder.DeliveryPartner())
	require.True(t, readyOrder.DeliveryPartner().IsEqual(partnerID))
	require.NotNil(t, readyOrder.EstimatedDeliveryTime())

	event := publisher.Calls[0].Arguments.Get(0).(ports.OrderEvent)
	require.Equal(t, order.Assigned, event.Status)
}

func TestClaimOrderCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	readyOrder := createReadyOrder(t)
	cmd, err := commands.NewClaimOrderCommand(readyOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, readyOrder.ID()).Return(readyOrder, nil).Once(),
		orderRepo.On("Claim", mock.Anything, readyOrder).Return(order.ErrClaimConflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewClaimOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrClaimConflict)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	item, err := order.NewLineItem(kernel.NewUUID(), 1, 10.00, "")
	require.NoError(t, err)
	pendingOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, "1 Main Street", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewClaimOrderCommand(pendingOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewClaimOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything)
}
