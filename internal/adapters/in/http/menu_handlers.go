package http

import (
	"net/http"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SaveDishVariantRequest is one variant of the dish being saved.
type SaveDishVariantRequest struct {
	Label         string  `json:"label"`
	PriceModifier float64 `json:"priceModifier"`
}

// SaveDishRequest is the body of POST /restaurants/:restaurantId/menu/dishes.
// Omitting the id creates a new dish; supplying one replaces that dish's
// name, base price and variant list.
type SaveDishRequest struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	BasePrice float64                  `json:"basePrice"`
	Variants  []SaveDishVariantRequest `json:"variants"`
}

// SaveDishResponse carries the identity of the saved dish.
type SaveDishResponse struct {
	DishID string `json:"dishId"`
}

// SaveDish handles POST /api/v1/restaurants/:restaurantId/menu/dishes.
func (s *Server) SaveDish(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id", err)
	}

	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor", err)
	}
	if by.Role() != actor.Restaurant || !by.ID().IsEqual(restaurantID) {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only the restaurant can manage its menu",
		})
	}

	var req SaveDishRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	dishID := kernel.NewUUID()
	if req.ID != "" {
		if dishID, err = kernel.UUIDFromString(req.ID); err != nil {
			return badRequest(ctx, "Invalid dish id", err)
		}
	}

	variants := make([]commands.SaveDishVariant, len(req.Variants))
	for i, variant := range req.Variants {
		variants[i] = commands.SaveDishVariant{
			Label:         variant.Label,
			PriceModifier: variant.PriceModifier,
		}
	}

	cmd, err := commands.NewSaveDishCommand(dishID, restaurantID, req.Name, req.BasePrice, variants)
	if err != nil {
		return badRequest(ctx, "Invalid dish data", err)
	}

	if handleErr := s.saveDishHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, SaveDishResponse{DishID: dishID.String()})
}
