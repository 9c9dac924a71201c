package commands

import (
	"context"
	"errors"
	"time"

	"foodmarket/internal/pkg/errs"
)

// RemoveCartItemCommandHandler handles removing lines from customer carts.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal. A missing cart or an absent line both leave
// the system unchanged without error, so removal is safe to retry.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err = aggregate.RemoveItem(cmd.DishID(), cmd.VariantLabel(), time.Now()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
