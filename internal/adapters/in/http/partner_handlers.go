package http

import (
	"net/http"
	"time"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// UpdatePartnerLocationRequest is the body of PUT /partners/:partnerId/location.
type UpdatePartnerLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyOrderResponse is one claimable order offered to a delivery partner,
// sorted nearest pickup first.
type NearbyOrderResponse struct {
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	DistanceKm   float64   `json:"distanceKm"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetNearbyOrders handles GET /api/v1/partners/:partnerId/orders/nearby -
// lists ready unclaimed orders within reach of the partner's last reported
// position.
func (s *Server) GetNearbyOrders(ctx echo.Context) error {
	partnerID, err := pathUUID(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, "Invalid partner id", err)
	}

	query, err := queries.NewGetNearbyOrdersQuery(partnerID)
	if err != nil {
		return badRequest(ctx, "Invalid nearby orders query", err)
	}

	offers, err := s.getNearbyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]NearbyOrderResponse, len(offers))
	for i, offer := range offers {
		response[i] = NearbyOrderResponse{
			OrderID:      offer.OrderID.String(),
			RestaurantID: offer.RestaurantID.String(),
			DistanceKm:   offer.DistanceKm,
			TotalAmount:  offer.TotalAmount,
			CreatedAt:    offer.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdatePartnerLocation handles PUT /api/v1/partners/:partnerId/location -
// stores the partner's position report for proximity matching.
func (s *Server) UpdatePartnerLocation(ctx echo.Context) error {
	partnerID, err := pathUUID(ctx, "partnerId")
	if err != nil {
		return badRequest(ctx, "Invalid partner id", err)
	}

	var req UpdatePartnerLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates", err)
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, location)
	if err != nil {
		return badRequest(ctx, "Invalid location data", err)
	}

	if handleErr := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
