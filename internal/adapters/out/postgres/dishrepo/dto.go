// Package dishrepo provides access to the menu catalog. Carts and menu views
// read dishes; restaurants manage their own entries through Save, which owns
// the dishes and dish_variants tables.
package dishrepo

import (
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO represents the database structure of a menu entry.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	BasePrice    float64

	Variants []DishVariantDTO `gorm:"foreignKey:DishID"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// DishVariantDTO represents one selectable option of a dish.
type DishVariantDTO struct {
	DishID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label         string    `gorm:"type:varchar(64);primaryKey"`
	PriceModifier float64
}

// TableName specifies the database table name for dish variant entities.
func (DishVariantDTO) TableName() string {
	return "dish_variants"
}

// fromDomain converts a dish value object to its database rows.
func fromDomain(dish catalog.Dish) (DishDTO, []DishVariantDTO) {
	dto := DishDTO{
		ID:           dish.ID().Bytes(),
		RestaurantID: dish.RestaurantID().Bytes(),
		Name:         dish.Name(),
		BasePrice:    dish.BasePrice(),
	}

	variants := make([]DishVariantDTO, 0, len(dish.Variants()))
	for _, variant := range dish.Variants() {
		variants = append(variants, DishVariantDTO{
			DishID:        dto.ID,
			Label:         variant.Label(),
			PriceModifier: variant.PriceModifier(),
		})
	}

	return dto, variants
}

// toDomain converts a database DTO to a dish value object.
func toDomain(dto DishDTO) (catalog.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Dish{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return catalog.Dish{}, err
	}

	variants := make([]catalog.Variant, 0, len(dto.Variants))
	for _, row := range dto.Variants {
		variant, variantErr := catalog.NewVariant(row.Label, row.PriceModifier)
		if variantErr != nil {
			return catalog.Dish{}, variantErr
		}
		variants = append(variants, variant)
	}

	return catalog.NewDish(id, restaurantID, dto.Name, dto.BasePrice, variants)
}
