package kernel_test

import (
	"testing"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("known_roles_are_valid", func(t *testing.T) {
		roles := []kernel.Role{
			kernel.RoleKitchen,
			kernel.RoleWaiter,
			kernel.RoleManager,
			kernel.RoleStorekeeper,
			kernel.RoleSystem,
		}

		for _, role := range roles {
			require.NoError(t, role.Validate(), "role %s should be valid", role)
		}
	})

	t.Run("unknown_role_is_invalid", func(t *testing.T) {
		err := kernel.Role("dishwasher").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_role_is_invalid", func(t *testing.T) {
		require.Error(t, kernel.Role("").Validate())
	})
}

func TestNewActor(t *testing.T) {
	t.Run("creates_valid_actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleKitchen)

		require.NoError(t, err)
		assert.Equal(t, id, actor.ID())
		assert.Equal(t, kernel.RoleKitchen, actor.Role())
		assert.False(t, actor.IsSystem())
		require.NoError(t, actor.Validate())
	})

	t.Run("rejects_zero_uuid", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleWaiter)

		require.Error(t, err)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("intern"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewSystemActor(t *testing.T) {
	t.Run("has_system_role_and_stable_identity", func(t *testing.T) {
		first := kernel.NewSystemActor()
		second := kernel.NewSystemActor()

		assert.True(t, first.IsSystem())
		assert.Equal(t, kernel.RoleSystem, first.Role())
		assert.True(t, first.IsEqual(second))
		require.NoError(t, first.Validate())
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero_value_actor_fails_validation", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	})
}

func TestActor_IsEqual(t *testing.T) {
	t.Run("same_identity_and_role_are_equal", func(t *testing.T) {
		id := kernel.NewUUID()
		a, _ := kernel.NewActor(id, kernel.RoleManager)
		b, _ := kernel.NewActor(id, kernel.RoleManager)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("same_identity_different_role_are_not_equal", func(t *testing.T) {
		id := kernel.NewUUID()
		a, _ := kernel.NewActor(id, kernel.RoleManager)
		b, _ := kernel.NewActor(id, kernel.RoleWaiter)

		assert.False(t, a.IsEqual(b))
	})
}
