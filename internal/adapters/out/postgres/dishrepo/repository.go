package dishrepo

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDishRepository implements DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// Get retrieves a dish with its variants by identifier.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Dish, error) {
	if err := id.Validate(); err != nil {
		return catalog.Dish{}, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).Preload("Variants").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Dish{}, errs.NewObjectNotFoundError("dish", id.String())
		}
		return catalog.Dish{}, err
	}

	return toDomain(dto)
}

// GetAllByRestaurant retrieves the restaurant's menu, ordered by dish name.
func (r *GormDishRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]catalog.Dish, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DishDTO
	err := r.db.WithContext(ctx).Preload("Variants").
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	dishes := make([]catalog.Dish, 0, len(dtos))
	for _, dto := range dtos {
		dish, dishErr := toDomain(dto)
		if dishErr != nil {
			return nil, dishErr
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

// Save creates the dish or replaces its name, price and variants. Variant
// rows are replaced wholesale, so labels the dish no longer offers disappear
// from the menu.
func (r *GormDishRepository) Save(ctx context.Context, dish catalog.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto, variants := fromDomain(dish)
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "base_price"}),
	}).Omit(clause.Associations).Create(&dto).Error
	if err != nil {
		return err
	}

	if err = db.Where("dish_id = ?", dto.ID).Delete(&DishVariantDTO{}).Error; err != nil {
		return err
	}
	if len(variants) > 0 {
		if err = db.Create(&variants).Error; err != nil {
			return err
		}
	}

	return nil
}
