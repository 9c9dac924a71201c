// Package http exposes the marketplace over a REST API. Handlers translate
// HTTP requests into commands and queries, map domain errors to status codes
// and stream live order tracking over server-sent events.
//
// Actors authenticate out of band; the gateway in front of this service
// injects the verified identity as the X-Actor-Id and X-Actor-Role headers.
package http

import (
	"net/http"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Headers carrying the authenticated actor identity, set by the gateway.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler        commands.AddCartItemCommandHandler
	removeCartItemHandler     commands.RemoveCartItemCommandHandler
	updateCartQuantityHandler commands.UpdateCartQuantityCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	claimOrderHandler         commands.ClaimOrderCommandHandler
	updateLocationHandler     commands.UpdatePartnerLocationCommandHandler
	saveDishHandler           commands.SaveDishCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getCartHandler         queries.GetCartQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getNearbyOrdersHandler queries.GetNearbyOrdersQueryHandler

	// Live tracking
	subscriber ports.OrderEventSubscriber
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	updateCartQuantityHandler commands.UpdateCartQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	updateLocationHandler commands.UpdatePartnerLocationCommandHandler,
	saveDishHandler commands.SaveDishCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getNearbyOrdersHandler queries.GetNearbyOrdersQueryHandler,
	subscriber ports.OrderEventSubscriber,
) *Server {
	return &Server{
		addCartItemHandler:        addCartItemHandler,
		removeCartItemHandler:     removeCartItemHandler,
		updateCartQuantityHandler: updateCartQuantityHandler,
		clearCartHandler:          clearCartHandler,
		checkoutHandler:           checkoutHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		claimOrderHandler:         claimOrderHandler,
		updateLocationHandler:     updateLocationHandler,
		saveDishHandler:           saveDishHandler,
		getMenuHandler:            getMenuHandler,
		getCartHandler:            getCartHandler,
		getOrderHandler:           getOrderHandler,
		getOrderHistoryHandler:    getOrderHistoryHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getNearbyOrdersHandler:    getNearbyOrdersHandler,
		subscriber:                subscriber,
	}
}

// RegisterRoutes mounts all marketplace endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/restaurants/:restaurantId/menu", s.GetMenu)
	api.POST("/restaurants/:restaurantId/menu/dishes", s.SaveDish)

	api.GET("/customers/:customerId/cart", s.GetCart)
	api.POST("/customers/:customerId/cart/items", s.AddCartItem)
	api.PATCH("/customers/:customerId/cart/items", s.UpdateCartQuantity)
	api.DELETE("/customers/:customerId/cart/items", s.RemoveCartItem)
	api.DELETE("/customers/:customerId/cart", s.ClearCart)
	api.POST("/customers/:customerId/checkout", s.Checkout)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)
	api.GET("/orders/:orderId/track", s.TrackOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/claim", s.ClaimOrder)

	api.GET("/partners/:partnerId/orders/nearby", s.GetNearbyOrders)
	api.PUT("/partners/:partnerId/location", s.UpdatePartnerLocation)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// actorFromHeaders resolves the acting identity from the gateway headers.
func actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func badRequest(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message + ": " + err.Error(),
	})
}
