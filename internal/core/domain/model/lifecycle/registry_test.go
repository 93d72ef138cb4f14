package lifecycle_test

import (
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, kind lifecycle.Kind, from, to lifecycle.State, roles []kernel.Role, opts ...lifecycle.RuleOption) lifecycle.TransitionRule {
	t.Helper()
	rule, err := lifecycle.NewTransitionRule(kind, from, to, roles, opts...)
	require.NoError(t, err)
	return rule
}

func TestRegistry_Register(t *testing.T) {
	kitchen := []kernel.Role{kernel.RoleKitchen}

	t.Run("registers_rule_table", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		err := registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
			mustRule(t, lifecycle.KindOrderItem, "in_progress", "ready", kitchen),
		})

		require.NoError(t, err)

		rule, err := registry.Rule(lifecycle.KindOrderItem, "pending", "in_progress")
		require.NoError(t, err)
		assert.Equal(t, lifecycle.State("in_progress"), rule.To())
	})

	t.Run("rejects_duplicate_triple", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		err := registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", []kernel.Role{kernel.RoleManager}),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrRuleConfig)

		var configErr *lifecycle.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, lifecycle.KindOrderItem, configErr.Kind)
		assert.Equal(t, lifecycle.State("pending"), configErr.From)
		assert.Equal(t, lifecycle.State("in_progress"), configErr.To)
	})

	t.Run("rejects_duplicate_across_registrations", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		require.NoError(t, registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
		}))

		err := registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrRuleConfig)
	})

	t.Run("rejects_rule_registered_under_different_kind", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		err := registry.Register(lifecycle.KindStorageBatch, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrRuleConfig)
	})

	t.Run("rejects_zero_value_rule", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		err := registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrRuleConfig)
	})

	t.Run("failed_registration_leaves_no_partial_state", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		err := registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
			mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
			{},
		})
		require.Error(t, err)

		_, err = registry.Rule(lifecycle.KindOrderItem, "pending", "in_progress")
		assert.ErrorIs(t, err, lifecycle.ErrTransitionNotAllowed)
	})
}

func TestRegistry_Rule(t *testing.T) {
	t.Run("absent_triple_is_not_allowed", func(t *testing.T) {
		registry := lifecycle.NewRegistry()

		_, err := registry.Rule(lifecycle.KindOrderItem, "pending", "served")

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrTransitionNotAllowed)
	})
}

func TestRegistry_InverseRule(t *testing.T) {
	kitchen := []kernel.Role{kernel.RoleKitchen}
	registry := lifecycle.NewRegistry()
	require.NoError(t, registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
		mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen, lifecycle.WithReversal(2*time.Minute)),
		mustRule(t, lifecycle.KindOrderItem, "in_progress", "pending", kitchen),
		mustRule(t, lifecycle.KindOrderItem, "in_progress", "ready", kitchen),
	}))

	t.Run("returns_reverse_rule", func(t *testing.T) {
		rule, err := registry.InverseRule(lifecycle.KindOrderItem, "pending", "in_progress")

		require.NoError(t, err)
		assert.Equal(t, lifecycle.State("in_progress"), rule.From())
		assert.Equal(t, lifecycle.State("pending"), rule.To())
	})

	t.Run("missing_reverse_rule", func(t *testing.T) {
		_, err := registry.InverseRule(lifecycle.KindOrderItem, "in_progress", "ready")

		require.Error(t, err)
		assert.ErrorIs(t, err, lifecycle.ErrNoInverseRule)
	})
}

func TestRegistry_AllowedTransitions(t *testing.T) {
	kitchen := []kernel.Role{kernel.RoleKitchen}
	managers := []kernel.Role{kernel.RoleManager, kernel.RoleWaiter}

	registry := lifecycle.NewRegistry()
	require.NoError(t, registry.Register(lifecycle.KindOrderItem, []lifecycle.TransitionRule{
		mustRule(t, lifecycle.KindOrderItem, "pending", "in_progress", kitchen),
		mustRule(t, lifecycle.KindOrderItem, "pending", "cancelled", managers),
		mustRule(t, lifecycle.KindOrderItem, "in_progress", "ready", kitchen),
	}))

	t.Run("returns_targets_in_registration_order", func(t *testing.T) {
		targets := registry.AllowedTransitions(lifecycle.KindOrderItem, "pending")

		assert.Equal(t, []lifecycle.State{"in_progress", "cancelled"}, targets)
	})

	t.Run("terminal_state_has_no_targets", func(t *testing.T) {
		assert.Empty(t, registry.AllowedTransitions(lifecycle.KindOrderItem, "served"))
	})

	t.Run("unknown_kind_has_no_targets", func(t *testing.T) {
		assert.Empty(t, registry.AllowedTransitions(lifecycle.KindStorageBatch, "pending"))
	})
}
