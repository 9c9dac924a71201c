package catalog

import (
	"errors"
	"fmt"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// ErrDishIsNotConstructed is returned when attempting to use an improperly
// initialized Dish. Dishes must be created via the NewDish constructor.
var ErrDishIsNotConstructed = errs.NewValueIsRequiredError(
	"dish must be created via NewDish constructor")

// ErrVariantNotFound is the unwrap target for VariantNotFoundError.
var ErrVariantNotFound = errors.New("dish variant not found")

// VariantNotFoundError reports a variant label the dish does not offer.
type VariantNotFoundError struct {
	DishID kernel.UUID
	Label  string
}

// NewVariantNotFoundError creates a VariantNotFoundError.
func NewVariantNotFoundError(dishID kernel.UUID, label string) *VariantNotFoundError {
	return &VariantNotFoundError{DishID: dishID, Label: label}
}

// Error implements the error interface.
func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("%s: dish %s has no variant %q", ErrVariantNotFound, e.DishID, e.Label)
}

// Unwrap returns the sentinel ErrVariantNotFound for errors.Is classification.
func (e *VariantNotFoundError) Unwrap() error {
	return ErrVariantNotFound
}

// Variant is one selectable option of a dish, such as a size or preparation.
// The price modifier is added to the dish's base price and may be negative.
type Variant struct {
	label         string
	priceModifier float64
}

// NewVariant creates a variant with a non-empty label.
func NewVariant(label string, priceModifier float64) (Variant, error) {
	if label == "" {
		return Variant{}, errs.NewValueIsRequiredError("label")
	}
	return Variant{label: label, priceModifier: priceModifier}, nil
}

// Label returns the variant's display label.
func (v Variant) Label() string {
	return v.label
}

// PriceModifier returns the signed amount added to the dish base price.
func (v Variant) PriceModifier() float64 {
	return v.priceModifier
}

// Dish is a menu entry offered by a single restaurant. Dish is an immutable
// value object: a menu edit builds a fresh dish and replaces the stored one,
// while carts keep the prices they snapshotted at add time.
type Dish struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	basePrice    float64
	variants     []Variant
	guard        guard.ConstructorGuard
}

// NewDish creates a dish for the given restaurant. Base price must not be
// negative. Variants are optional; an empty list means the dish is ordered
// as-is with an empty variant label.
func NewDish(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	basePrice float64,
	variants []Variant,
) (Dish, error) {
	d := Dish{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setBasePrice(basePrice),
	); err != nil {
		return Dish{}, err
	}

	d.variants = make([]Variant, len(variants))
	copy(d.variants, variants)

	return d, nil
}

// Validate checks if the Dish was properly constructed via NewDish.
func (d Dish) Validate() error {
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish's unique identifier.
func (d Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the owning restaurant's identity.
func (d Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish's display name.
func (d Dish) Name() string {
	return d.name
}

// BasePrice returns the price of the default variant.
func (d Dish) BasePrice() float64 {
	return d.basePrice
}

// Variants returns a copy of the dish's variants.
func (d Dish) Variants() []Variant {
	variants := make([]Variant, len(d.variants))
	copy(variants, d.variants)
	return variants
}

// EffectivePrice resolves the per-unit price for the given variant label.
// The empty label selects the default variant at the base price. A non-empty
// label must match one of the dish's variants; the result is base price plus
// that variant's modifier, floored at zero.
func (d Dish) EffectivePrice(variantLabel string) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	if variantLabel == "" {
		return d.basePrice, nil
	}

	for _, v := range d.variants {
		if v.label == variantLabel {
			price := d.basePrice + v.priceModifier
			if price < 0 {
				price = 0
			}
			return price, nil
		}
	}

	return 0, NewVariantNotFoundError(d.id, variantLabel)
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price is invalid",
			fmt.Errorf("%f is negative", basePrice))
	}
	d.basePrice = basePrice
	return nil
}
