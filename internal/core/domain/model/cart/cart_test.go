package cart_test

import (
	"testing"
	"time"

	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createDish(t *testing.T, restaurantID kernel.UUID, name string, basePrice float64, variants ...catalog.Variant) catalog.Dish {
	t.Helper()

	d, err := catalog.NewDish(kernel.NewUUID(), restaurantID, name, basePrice, variants)
	require.NoError(t, err)
	return d
}

func createVariant(t *testing.T, label string, modifier float64) catalog.Variant {
	t.Helper()

	v, err := catalog.NewVariant(label, modifier)
	require.NoError(t, err)
	return v
}

func createCart(t *testing.T) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should create empty cart", func(t *testing.T) {
		customerID := kernel.NewUUID()

		c, err := cart.NewCart(customerID, time.Now())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.CustomerID().IsEqual(customerID))
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.RestaurantID())
		assert.Zero(t, c.ItemCount())
		assert.Zero(t, c.Total())
	})

	t.Run("should return error for invalid customer", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := cart.NewCart(invalidID, time.Now())

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should return error for zero time", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), time.Time{})

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCartValidate(t *testing.T) {
	t.Run("should fail for cart not created via constructor", func(t *testing.T) {
		var c cart.Cart

		assert.ErrorIs(t, c.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCartAddItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should add line and bind restaurant", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)

		err := c.AddItem(dish, "", 2, false, time.Now())

		require.NoError(t, err)
		require.NotNil(t, c.RestaurantID())
		assert.True(t, c.RestaurantID().IsEqual(restaurantID))
		items := c.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].DishID().IsEqual(dish.ID()))
		assert.Equal(t, "Margherita", items[0].DishName())
		assert.Equal(t, 2, items[0].Quantity())
		assert.InDelta(t, 9.50, items[0].UnitPrice(), 0.001)
		assert.Equal(t, 2, c.ItemCount())
		assert.InDelta(t, 19.00, c.Total(), 0.001)
	})

	t.Run("should snapshot variant price", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50, createVariant(t, "large", 3.00))

		err := c.AddItem(dish, "large", 1, false, time.Now())

		require.NoError(t, err)
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "large", items[0].VariantLabel())
		assert.InDelta(t, 12.50, items[0].UnitPrice(), 0.001)
	})

	t.Run("should merge quantities for the same dish and variant", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)

		require.NoError(t, c.AddItem(dish, "", 1, false, time.Now()))
		require.NoError(t, c.AddItem(dish, "", 2, false, time.Now()))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity())
	})

	t.Run("should keep separate lines for different variants of the same dish", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50,
			createVariant(t, "small", -2.00), createVariant(t, "large", 3.00))

		require.NoError(t, c.AddItem(dish, "small", 1, false, time.Now()))
		require.NoError(t, c.AddItem(dish, "large", 1, false, time.Now()))

		assert.Len(t, c.Items(), 2)
		assert.Equal(t, 2, c.ItemCount())
	})

	t.Run("should return mismatch error for a dish from another restaurant", func(t *testing.T) {
		c := createCart(t)
		first := createDish(t, restaurantID, "Margherita", 9.50)
		otherRestaurantID := kernel.NewUUID()
		second := createDish(t, otherRestaurantID, "Sushi Set", 21.00)
		require.NoError(t, c.AddItem(first, "", 1, false, time.Now()))

		err := c.AddItem(second, "", 1, false, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, cart.ErrRestaurantMismatch)
		var mismatch *cart.RestaurantMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.True(t, mismatch.CartRestaurantID.IsEqual(restaurantID))
		assert.True(t, mismatch.DishRestaurantID.IsEqual(otherRestaurantID))

		// Cart unchanged.
		require.Len(t, c.Items(), 1)
		assert.True(t, c.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("should clear and switch restaurant when replace is set", func(t *testing.T) {
		c := createCart(t)
		first := createDish(t, restaurantID, "Margherita", 9.50)
		otherRestaurantID := kernel.NewUUID()
		second := createDish(t, otherRestaurantID, "Sushi Set", 21.00)
		require.NoError(t, c.AddItem(first, "", 2, false, time.Now()))

		err := c.AddItem(second, "", 1, true, time.Now())

		require.NoError(t, err)
		items := c.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].DishID().IsEqual(second.ID()))
		assert.True(t, c.RestaurantID().IsEqual(otherRestaurantID))
	})

	t.Run("should return error for unknown variant", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)

		err := c.AddItem(dish, "giant", 1, false, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrVariantNotFound)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)

		for _, quantity := range []int{0, -1} {
			err := c.AddItem(dish, "", quantity, false, time.Now())

			require.Error(t, err)
		}
		assert.True(t, c.IsEmpty())
	})
}

func TestCartRemoveItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should remove line by dish and variant identity", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50,
			createVariant(t, "small", -2.00), createVariant(t, "large", 3.00))
		require.NoError(t, c.AddItem(dish, "small", 1, false, time.Now()))
		require.NoError(t, c.AddItem(dish, "large", 1, false, time.Now()))

		err := c.RemoveItem(dish.ID(), "small", time.Now())

		require.NoError(t, err)
		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "large", items[0].VariantLabel())
	})

	t.Run("should be idempotent for absent lines", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 1, false, time.Now()))

		err := c.RemoveItem(kernel.NewUUID(), "", time.Now())

		require.NoError(t, err)
		assert.Len(t, c.Items(), 1)
	})

	t.Run("should drop restaurant binding when cart becomes empty", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 1, false, time.Now()))

		require.NoError(t, c.RemoveItem(dish.ID(), "", time.Now()))

		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.RestaurantID())
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should set quantity of an existing line", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 1, false, time.Now()))

		err := c.UpdateQuantity(dish.ID(), "", 5, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 5, c.Items()[0].Quantity())
		assert.InDelta(t, 47.50, c.Total(), 0.001)
	})

	t.Run("should remove line for zero or negative quantity", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 2, false, time.Now()))

		err := c.UpdateQuantity(dish.ID(), "", 0, time.Now())

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.RestaurantID())
	})

	t.Run("should return not found error for an absent line", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, restaurantID, "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 1, false, time.Now()))

		err := c.UpdateQuantity(kernel.NewUUID(), "", 2, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCartClear(t *testing.T) {
	t.Run("should remove all lines and restaurant binding", func(t *testing.T) {
		c := createCart(t)
		dish := createDish(t, kernel.NewUUID(), "Margherita", 9.50)
		require.NoError(t, c.AddItem(dish, "", 2, false, time.Now()))

		err := c.Clear(time.Now())

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.RestaurantID())
		assert.Zero(t, c.Total())
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should restore persisted cart", func(t *testing.T) {
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		item, err := cart.RestoreItem(kernel.NewUUID(), "Margherita", "large", 2, 12.50)
		require.NoError(t, err)
		updatedAt := time.Now()

		c, err := cart.RestoreCart(customerID, &restaurantID, []cart.Item{item}, updatedAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.CustomerID().IsEqual(customerID))
		assert.True(t, c.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, 2, c.ItemCount())
		assert.Equal(t, updatedAt, c.UpdatedAt())
	})

	t.Run("should restore empty cart without restaurant", func(t *testing.T) {
		c, err := cart.RestoreCart(kernel.NewUUID(), nil, nil, time.Now())

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should return error for items without restaurant", func(t *testing.T) {
		item, err := cart.RestoreItem(kernel.NewUUID(), "Margherita", "", 1, 9.50)
		require.NoError(t, err)

		c, err := cart.RestoreCart(kernel.NewUUID(), nil, []cart.Item{item}, time.Now())

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should return error for restaurant on empty cart", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		c, err := cart.RestoreCart(kernel.NewUUID(), &restaurantID, nil, time.Now())

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should return error for invalid values", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := cart.RestoreItem(invalidID, "Margherita", "", 1, 9.50)
		require.Error(t, err)

		_, err = cart.RestoreItem(kernel.NewUUID(), "Margherita", "", 0, 9.50)
		require.Error(t, err)

		_, err = cart.RestoreItem(kernel.NewUUID(), "Margherita", "", 1, -0.01)
		require.Error(t, err)
	})
}
