// Package locationrepo persists geographic positions: fixed restaurant
// pickup points and the moving last-known locations of delivery partners.
package locationrepo

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantLocationDTO represents a restaurant's fixed pickup coordinates.
// Rows are maintained by the restaurant onboarding flow; the marketplace
// only reads them.
type RestaurantLocationDTO struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude     float64
	Longitude    float64
}

// TableName specifies the database table name for restaurant locations.
func (RestaurantLocationDTO) TableName() string {
	return "restaurant_locations"
}

// PartnerLocationDTO represents a delivery partner's last reported position.
// One row per partner, replaced on every report and swept when stale.
type PartnerLocationDTO struct {
	PartnerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude   float64
	Longitude  float64
	ReportedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for partner locations.
func (PartnerLocationDTO) TableName() string {
	return "partner_locations"
}
