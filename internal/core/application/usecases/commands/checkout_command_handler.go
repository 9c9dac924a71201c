package commands

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"
)

// CheckoutCommandHandler turns a cart into a pending order.
// The order creation and the cart removal happen in one transaction: a
// customer never ends up with both an order and a lingering cart, or with
// neither.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCheckoutCommand(kernel.NewUUID(), customerID, "1 Main Street")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is now pending, waiting for the restaurant to confirm
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a cross-aggregate UoWFactory and an event publisher for the live
// tracking stream.
func NewCheckoutCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
//
// Loads the customer's cart, converts its lines into order line items with
// the snapshotted prices, creates the order in pending status and deletes
// the cart. Fails with ErrCartIsEmpty when there is nothing to check out.
// The pending event is published only after a successful commit.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return ErrCartIsEmpty
	}

	items := make([]order.LineItem, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		item, itemErr := order.NewLineItem(line.DishID(), line.Quantity(), line.UnitPrice(), line.VariantLabel())
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		*aggregate.RestaurantID(),
		items,
		cmd.DeliveryAddress(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.OrderEvent{
		OrderID:    newOrder.ID(),
		Status:     order.Pending,
		OccurredAt: now,
	})

	return nil
}
