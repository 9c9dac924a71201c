package commands

import (
	"context"
	"time"
)

// UpdateCartQuantityCommandHandler handles quantity changes on cart lines.
type UpdateCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateCartQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{uowFactory: uowFactory}
}

// Handle processes the quantity change. Fails with an object-not-found error
// when the customer has no cart or the line does not exist, except for
// non-positive quantities, which delegate to idempotent removal.
func (h *UpdateCartQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) error {
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

	if err = aggregate.UpdateQuantity(cmd.DishID(), cmd.VariantLabel(), cmd.Quantity(), time.Now()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
