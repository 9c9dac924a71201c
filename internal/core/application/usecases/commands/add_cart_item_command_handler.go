package commands

import (
	"context"
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/ports"
	"foodmarket/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding dishes to customer carts.
// Resolves the dish from the catalog, snapshots its effective price and
// merges the line into the cart under the single-restaurant rule.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	dishRepo   ports.DishRepository
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, dishRepo ports.DishRepository) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		dishRepo:   dishRepo,
	}
}

// Handle processes the cart addition. A customer without a cart gets a fresh
// one. When the dish belongs to another restaurant than the cart's items,
// the cart aggregate fails with cart.ErrRestaurantMismatch unless the
// command's replace flag is set.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dish, err := h.dishRepo.Get(ctx, cmd.DishID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		aggregate, err = cart.NewCart(cmd.CustomerID(), time.Now())
		if err != nil {
			return err
		}
	}

	if err = aggregate.AddItem(dish, cmd.VariantLabel(), cmd.Quantity(), cmd.Replace(), time.Now()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
