package http

import (
	"net/http"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CheckoutRequest is the body of POST /customers/:customerId/checkout.
// OrderID is optional: clients supply their own identifier to make the
// checkout retry-safe, otherwise one is generated.
type CheckoutRequest struct {
	OrderID         string `json:"orderId"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// CheckoutResponse returns the identifier of the placed order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// ChangeOrderStatusRequest is the body of POST /orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one line of the order view.
type OrderItemResponse struct {
	DishID       string  `json:"dishId"`
	VariantLabel string  `json:"variantLabel"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID                    string              `json:"id"`
	CustomerID            string              `json:"customerId"`
	RestaurantID          string              `json:"restaurantId"`
	DeliveryPartnerID     *string             `json:"deliveryPartnerId"`
	Status                string              `json:"status"`
	TotalAmount           float64             `json:"totalAmount"`
	DeliveryAddress       string              `json:"deliveryAddress"`
	EstimatedDeliveryTime *time.Time          `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
	Items                 []OrderItemResponse `json:"items"`
}

// HistoryEntryResponse is one status history entry of an order.
type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
	Note       string    `json:"note"`
}

// ActiveOrderResponse is one row of an actor's active order list.
type ActiveOrderResponse struct {
	ID                    string     `json:"id"`
	RestaurantID          string     `json:"restaurantId"`
	Status                string     `json:"status"`
	TotalAmount           float64    `json:"totalAmount"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// Checkout handles POST /api/v1/customers/:customerId/checkout - turns the
// customer's cart into a pending order.
func (s *Server) Checkout(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id", err)
	}

	var req CheckoutRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	orderID := kernel.NewUUID()
	if req.OrderID != "" {
		if orderID, err = kernel.UUIDFromString(req.OrderID); err != nil {
			return badRequest(ctx, "Invalid order id", err)
		}
	}

	cmd, err := commands.NewCheckoutCommand(orderID, customerID, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data", err)
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order query", err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	items := make([]OrderItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItemResponse{
			DishID:       item.DishID.String(),
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		}
	}

	response := OrderResponse{
		ID:                    view.ID.String(),
		CustomerID:            view.CustomerID.String(),
		RestaurantID:          view.RestaurantID.String(),
		Status:                view.Status,
		TotalAmount:           view.TotalAmount,
		DeliveryAddress:       view.DeliveryAddress,
		EstimatedDeliveryTime: view.EstimatedDeliveryTime,
		CreatedAt:             view.CreatedAt,
		UpdatedAt:             view.UpdatedAt,
		Items:                 items,
	}
	if view.DeliveryPartnerID != nil {
		id := view.DeliveryPartnerID.String()
		response.DeliveryPartnerID = &id
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid history query", err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(history))
	for i, entry := range history {
		response[i] = HistoryEntryResponse{
			Status:     entry.Status,
			OccurredAt: entry.OccurredAt,
			Note:       entry.Note,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - lists the acting
// identity's orders that are not yet completed or rejected.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers", err)
	}

	query, err := queries.NewGetActiveOrdersQuery(by)
	if err != nil {
		return badRequest(ctx, "Invalid active orders query", err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = ActiveOrderResponse{
			ID:                    row.ID.String(),
			RestaurantID:          row.RestaurantID.String(),
			Status:                row.Status,
			TotalAmount:           row.TotalAmount,
			EstimatedDeliveryTime: row.EstimatedDeliveryTime,
			CreatedAt:             row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status - moves the
// order along the state machine on behalf of the acting identity.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers", err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, by)
	if err != nil {
		return badRequest(ctx, "Invalid status change data", err)
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimOrder handles POST /api/v1/orders/:orderId/claim - the acting
// delivery partner takes exclusive ownership of a ready order. A lost race
// surfaces as a conflict.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	by, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers", err)
	}
	if by.Role() != actor.DeliveryPartner {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only delivery partners can claim orders",
		})
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, by.ID())
	if err != nil {
		return badRequest(ctx, "Invalid claim data", err)
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
