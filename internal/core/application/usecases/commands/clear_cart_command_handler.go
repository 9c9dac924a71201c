package commands

import (
	"context"
	"errors"

	"foodmarket/internal/pkg/errs"
)

// ClearCartCommandHandler handles emptying customer carts.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

// Handle empties the cart. Clearing an absent cart is a no-op.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if _, err := cartRepo.Get(ctx, cmd.CustomerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err := cartRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
