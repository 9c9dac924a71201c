package ports

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
)

// LocationRepository defines the persistence contract for geographic
// positions: fixed restaurant pickup points and the moving last-known
// locations of delivery partners.
type LocationRepository interface {
	// GetRestaurantLocations resolves pickup coordinates for the given
	// restaurants. Restaurants without a stored location are simply absent
	// from the result; their orders drop out of proximity matching.
	GetRestaurantLocations(ctx context.Context, restaurantIDs []kernel.UUID) (map[kernel.UUID]kernel.GeoPoint, error)

	// UpsertPartnerLocation stores the delivery partner's last reported
	// position, replacing any previous report.
	UpsertPartnerLocation(ctx context.Context, partnerID kernel.UUID, location kernel.GeoPoint, reportedAt time.Time) error

	// GetPartnerLocation retrieves the partner's last reported position.
	// Returns an object-not-found error when the partner never reported.
	GetPartnerLocation(ctx context.Context, partnerID kernel.UUID) (kernel.GeoPoint, error)

	// DeleteStalePartnerLocations removes partner positions reported before
	// the cutoff and returns the number of rows removed. Partners without a
	// fresh position are not offered orders.
	DeleteStalePartnerLocations(ctx context.Context, cutoff time.Time) (int64, error)
}
