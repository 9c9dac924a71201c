package http

import (
	"net/http"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"

	"foodmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddCartItemRequest is the body of POST /customers/:customerId/cart/items.
// Replace confirms a restaurant switch: the cart is cleared before adding.
type AddCartItemRequest struct {
	DishID       string `json:"dishId"`
	VariantLabel string `json:"variantLabel"`
	Quantity     int    `json:"quantity"`
	Replace      bool   `json:"replace"`
}

// UpdateCartQuantityRequest is the body of PATCH /customers/:customerId/cart/items.
// A non-positive quantity removes the line.
type UpdateCartQuantityRequest struct {
	DishID       string `json:"dishId"`
	VariantLabel string `json:"variantLabel"`
	Quantity     int    `json:"quantity"`
}

// CartItemResponse is one cart line in the cart view.
type CartItemResponse struct {
	DishID       string  `json:"dishId"`
	DishName     string  `json:"dishName"`
	VariantLabel string  `json:"variantLabel"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Subtotal     float64 `json:"subtotal"`
}

// CartResponse is the cart view returned to customers.
type CartResponse struct {
	RestaurantID *string            `json:"restaurantId"`
	Items        []CartItemResponse `json:"items"`
	ItemCount    int                `json:"itemCount"`
	Total        float64            `json:"total"`
	UpdatedAt    *time.Time         `json:"updatedAt"`
}

// MenuVariantResponse is one variant of a dish with its resolved price.
type MenuVariantResponse struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// MenuDishResponse is one dish of a restaurant menu.
type MenuDishResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	BasePrice float64               `json:"basePrice"`
	Variants  []MenuVariantResponse `json:"variants"`
}

// GetMenu handles GET /api/v1/restaurants/:restaurantId/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id", err)
	}

	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid menu query", err)
	}

	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]MenuDishResponse, len(menu))
	for i, dish := range menu {
		variants := make([]MenuVariantResponse, len(dish.Variants))
		for j, variant := range dish.Variants {
			variants[j] = MenuVariantResponse{
				Label: variant.Label,
				Price: variant.Price,
			}
		}
		response[i] = MenuDishResponse{
			ID:        dish.ID.String(),
			Name:      dish.Name,
			BasePrice: dish.BasePrice,
			Variants:  variants,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/customers/:customerId/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid cart query", err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	items := make([]CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = CartItemResponse{
			DishID:       item.DishID.String(),
			DishName:     item.DishName,
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
		}
	}

	response := CartResponse{
		Items:     items,
		ItemCount: view.ItemCount,
		Total:     view.Total,
		UpdatedAt: view.UpdatedAt,
	}
	if view.RestaurantID != nil {
		id := view.RestaurantID.String()
		response.RestaurantID = &id
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/customers/:customerId/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	var req AddCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	dishID, err := kernel.UUIDFromString(req.DishID)
	if err != nil {
		return badRequest(ctx, "Invalid dish id", err)
	}

	cmd, err := commands.NewAddCartItemCommand(customerID, dishID, req.VariantLabel, req.Quantity, req.Replace)
	if err != nil {
		return badRequest(ctx, "Invalid cart item data", err)
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartQuantity handles PATCH /api/v1/customers/:customerId/cart/items.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	var req UpdateCartQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	dishID, err := kernel.UUIDFromString(req.DishID)
	if err != nil {
		return badRequest(ctx, "Invalid dish id", err)
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(customerID, dishID, req.VariantLabel, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity data", err)
	}

	if handleErr := s.updateCartQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/customers/:customerId/cart/items.
// The line is identified by the dishId and variantLabel query parameters.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	dishID, err := kernel.UUIDFromString(ctx.QueryParam("dishId"))
	if err != nil {
		return badRequest(ctx, "Invalid dish id", err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, dishID, ctx.QueryParam("variantLabel"))
	if err != nil {
		return badRequest(ctx, "Invalid cart item data", err)
	}

	if handleErr := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/customers/:customerId/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid clear cart data", err)
	}

	if handleErr := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
