package http

import (
	"errors"
	"net/http"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeDomainError maps a use case failure to an HTTP status:
//
//   - lost claim races and rejected state machine edges are conflicts,
//     the client should re-read the order and decide again;
//   - actors acting outside their role or identity are forbidden;
//   - unknown objects are not found;
//   - everything that failed validation is a bad request;
//   - anything else is an internal error.
func writeDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, order.ErrClaimConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, cart.ErrRestaurantMismatch):
		status = http.StatusConflict

	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, commands.ErrDishNotOwned):
		status = http.StatusForbidden

	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound

	case errors.Is(err, commands.ErrCartIsEmpty):
		status = http.StatusUnprocessableEntity

	case errors.Is(err, catalog.ErrVariantNotFound),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
