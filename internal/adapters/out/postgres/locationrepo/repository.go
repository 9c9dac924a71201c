package locationrepo

import (
	"context"
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// GetRestaurantLocations resolves pickup coordinates for the given
// restaurants. Restaurants without a stored location are absent from the
// result rather than reported as errors.
func (r *GormLocationRepository) GetRestaurantLocations(
	ctx context.Context, restaurantIDs []kernel.UUID,
) (map[kernel.UUID]kernel.GeoPoint, error) {
	locations := make(map[kernel.UUID]kernel.GeoPoint, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return locations, nil
	}

	ids := make([]uuid.UUID, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []RestaurantLocationDTO
	if err := r.db.WithContext(ctx).Where("restaurant_id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
		if err != nil {
			return nil, err
		}

		point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
		if err != nil {
			return nil, err
		}

		locations[restaurantID] = point
	}

	return locations, nil
}

// UpsertPartnerLocation stores the delivery partner's last reported position,
// replacing any previous report.
func (r *GormLocationRepository) UpsertPartnerLocation(
	ctx context.Context, partnerID kernel.UUID, location kernel.GeoPoint, reportedAt time.Time,
) error {
	if err := errors.Join(partnerID.Validate(), location.Validate()); err != nil {
		return err
	}

	dto := PartnerLocationDTO{
		PartnerID:  partnerID.Bytes(),
		Latitude:   location.Latitude(),
		Longitude:  location.Longitude(),
		ReportedAt: reportedAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "partner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "reported_at"}),
		}).
		Create(&dto).Error
}

// GetPartnerLocation retrieves the partner's last reported position.
func (r *GormLocationRepository) GetPartnerLocation(
	ctx context.Context, partnerID kernel.UUID,
) (kernel.GeoPoint, error) {
	if err := partnerID.Validate(); err != nil {
		return kernel.GeoPoint{}, err
	}

	var dto PartnerLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "partner_id = ?", partnerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.GeoPoint{}, errs.NewObjectNotFoundError("partner location", partnerID.String())
		}
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
}

// DeleteStalePartnerLocations removes partner positions reported before the
// cutoff and returns the number of rows removed.
func (r *GormLocationRepository) DeleteStalePartnerLocations(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("reported_at < ?", cutoff).
		Delete(&PartnerLocationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
