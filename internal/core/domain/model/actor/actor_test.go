package actor_test

import (
	"fmt"
	"testing"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("should validate resolvable roles", func(t *testing.T) {
		for _, role := range []actor.Role{actor.Customer, actor.Restaurant, actor.DeliveryPartner} {
			t.Run(role.String(), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject unassigned and unknown roles", func(t *testing.T) {
		for _, role := range []actor.Role{actor.Unassigned, actor.Role(-1), actor.Role(4), actor.Role(100)} {
			t.Run(fmt.Sprintf("role value %d", int(role)), func(t *testing.T) {
				err := role.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return wire names for valid roles", func(t *testing.T) {
		testCases := []struct {
			role     actor.Role
			expected string
		}{
			{actor.Customer, "customer"},
			{actor.Restaurant, "restaurant"},
			{actor.DeliveryPartner, "delivery"},
			{actor.Unassigned, "unassigned"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.role.String())
		}
	})

	t.Run("should return unassigned for unknown values", func(t *testing.T) {
		assert.Equal(t, "unassigned", actor.Role(42).String())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should resolve wire names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected actor.Role
		}{
			{"customer", actor.Customer},
			{"restaurant", actor.Restaurant},
			{"delivery", actor.DeliveryPartner},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				role, err := actor.RoleFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, role)
			})
		}
	})

	t.Run("should resolve unknown names to unassigned with error", func(t *testing.T) {
		for _, input := range []string{"", "admin", "unassigned", "DELIVERY"} {
			t.Run(fmt.Sprintf("input %q", input), func(t *testing.T) {
				role, err := actor.RoleFromString(input)

				require.Error(t, err)
				assert.Equal(t, actor.Unassigned, role)
			})
		}
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid identity and role", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, actor.Restaurant)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, actor.Restaurant, a.Role())
		require.NoError(t, a.Validate())
	})

	t.Run("should reject zero identity", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, actor.Customer)

		require.Error(t, err)
	})

	t.Run("should reject unassigned role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), actor.Unassigned)

		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var a actor.Actor

		err := a.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestActor_IsEqual(t *testing.T) {
	t.Run("should compare identity and role", func(t *testing.T) {
		id := kernel.NewUUID()
		a1, err := actor.NewActor(id, actor.Customer)
		require.NoError(t, err)
		a2, err := actor.NewActor(id, actor.Customer)
		require.NoError(t, err)
		a3, err := actor.NewActor(id, actor.Restaurant)
		require.NoError(t, err)

		equal, err := a1.IsEqual(a2)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a1.IsEqual(a3)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}
