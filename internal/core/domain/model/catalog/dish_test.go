package catalog_test

import (
	"testing"

	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVariant(t *testing.T, label string, modifier float64) catalog.Variant {
	t.Helper()
	v, err := catalog.NewVariant(label, modifier)
	require.NoError(t, err)
	return v
}

func TestNewDish(t *testing.T) {
	validID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()

	t.Run("should create dish with valid parameters", func(t *testing.T) {
		variants := []catalog.Variant{
			createVariant(t, "small", -2.00),
			createVariant(t, "large", 3.00),
		}

		d, err := catalog.NewDish(validID, validRestaurantID, "Margherita", 9.50, variants)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.True(t, d.RestaurantID().IsEqual(validRestaurantID))
		assert.Equal(t, "Margherita", d.Name())
		assert.InDelta(t, 9.50, d.BasePrice(), 0.001)
		assert.Len(t, d.Variants(), 2)
	})

	t.Run("should create dish without variants", func(t *testing.T) {
		d, err := catalog.NewDish(validID, validRestaurantID, "Cola", 3.00, nil)

		require.NoError(t, err)
		assert.Empty(t, d.Variants())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := catalog.NewDish(validID, validRestaurantID, "", 9.50, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should return error for negative base price", func(t *testing.T) {
		_, err := catalog.NewDish(validID, validRestaurantID, "Margherita", -1, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should return error for invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := catalog.NewDish(invalidID, validRestaurantID, "Margherita", 9.50, nil)

		require.Error(t, err)
	})
}

func TestNewVariant(t *testing.T) {
	t.Run("should allow negative price modifier", func(t *testing.T) {
		v, err := catalog.NewVariant("small", -2.00)

		require.NoError(t, err)
		assert.Equal(t, "small", v.Label())
		assert.InDelta(t, -2.00, v.PriceModifier(), 0.001)
	})

	t.Run("should return error for empty label", func(t *testing.T) {
		_, err := catalog.NewVariant("", 1.00)

		require.Error(t, err)
	})
}

func TestDishEffectivePrice(t *testing.T) {
	dish, err := catalog.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Margherita", 9.50,
		[]catalog.Variant{
			createVariant(t, "small", -2.00),
			createVariant(t, "large", 3.00),
		})
	require.NoError(t, err)

	t.Run("should return base price for empty label", func(t *testing.T) {
		price, err := dish.EffectivePrice("")

		require.NoError(t, err)
		assert.InDelta(t, 9.50, price, 0.001)
	})

	t.Run("should apply variant modifier", func(t *testing.T) {
		price, err := dish.EffectivePrice("large")
		require.NoError(t, err)
		assert.InDelta(t, 12.50, price, 0.001)

		price, err = dish.EffectivePrice("small")
		require.NoError(t, err)
		assert.InDelta(t, 7.50, price, 0.001)
	})

	t.Run("should floor effective price at zero", func(t *testing.T) {
		cheap, err := catalog.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Sample", 1.00,
			[]catalog.Variant{createVariant(t, "promo", -5.00)})
		require.NoError(t, err)

		price, err := cheap.EffectivePrice("promo")

		require.NoError(t, err)
		assert.Zero(t, price)
	})

	t.Run("should return typed error for unknown variant", func(t *testing.T) {
		_, err := dish.EffectivePrice("giant")

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrVariantNotFound)
		var notFound *catalog.VariantNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "giant", notFound.Label)
	})

	t.Run("should fail for dish not created via constructor", func(t *testing.T) {
		var d catalog.Dish

		_, err := d.EffectivePrice("")

		require.Error(t, err)
	})
}
