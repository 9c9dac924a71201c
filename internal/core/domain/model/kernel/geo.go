package kernel

import (
	"errors"
	"fmt"
	"math"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
	// The spherical approximation is accepted for short urban delivery
	// distances; no ellipsoid correction is applied.
	EarthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via the NewGeoPoint
// constructor to guarantee coordinate validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate in decimal degrees.
// GeoPoint is an immutable value object whose latitude is always within
// [MinLatitude, MaxLatitude] and longitude within [MinLongitude, MaxLongitude].
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude, MaxLatitude] and longitude within
// [MinLongitude, MaxLongitude]; NaN is rejected. Returns an error if either
// coordinate is outside the valid bounds.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value of GeoPoint fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation of the GeoPoint.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for equality of both coordinates.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the Haversine formula with EarthRadiusKm.
//
// The result is deterministic and symmetric: d(a,b) == d(b,a), and
// d(x,x) == 0 for any point x. Both points must be properly constructed
// for the calculation to succeed.
//
// Example:
//
//	moscow, _ := kernel.NewGeoPoint(55.7558, 37.6173)
//	paris, _ := kernel.NewGeoPoint(48.8566, 2.3522)
//
//	distance, err := moscow.DistanceKm(paris)
//	// distance ≈ 2486 km
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(other.latitude - p.latitude)
	dLon := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(p.latitude))*math.Cos(degreesToRadians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, enabling self-encapsulated validation during construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, enabling self-encapsulated validation during construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
