package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodmarket/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// TrackingEvent is one server-sent event of the live tracking stream.
type TrackingEvent struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TrackOrder handles GET /api/v1/orders/:orderId/track - streams the order's
// status changes as server-sent events. The current status is sent
// immediately, then every committed change until the order reaches a
// terminal state or the client disconnects.
//
// Delivery is best effort: a client that falls behind misses events and
// recovers by re-reading the order history.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order query", err)
	}

	// Subscribe before the snapshot read so no committed change can fall
	// between the two.
	events, cancel := s.subscriber.Subscribe(orderID)
	defer cancel()

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	if err = writeTrackingEvent(resp, TrackingEvent{
		OrderID:    view.ID.String(),
		Status:     view.Status,
		OccurredAt: view.UpdatedAt,
	}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if err = writeTrackingEvent(resp, TrackingEvent{
				OrderID:    event.OrderID.String(),
				Status:     event.Status.String(),
				OccurredAt: event.OccurredAt,
			}); err != nil {
				return err
			}

			if event.Status.IsTerminal() {
				return nil
			}
		}
	}
}

func writeTrackingEvent(resp *echo.Response, event TrackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(resp, "event: status\ndata: %s\n\n", data); err != nil {
		return err
	}

	resp.Flush()
	return nil
}
