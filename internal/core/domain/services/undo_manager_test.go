package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickUp runs pending -> in_progress and returns the updated snapshot with
// the recorded event, the usual setup for undo scenarios.
func pickUp(t *testing.T, f *fixture) (lifecycle.Entity, lifecycle.EventRecord) {
	t.Helper()

	updated, event, err := f.executor.Transition(
		context.Background(), newPendingItem(t), orderitem.StateInProgress, newActor(t, kernel.RoleKitchen), "",
	)
	require.NoError(t, err)
	return updated, event
}

func TestUndoManager_Undo(t *testing.T) {
	ctx := context.Background()

	t.Run("reverses_within_window_with_compensating_event", func(t *testing.T) {
		f := newFixture(t)
		item, original := pickUp(t, f)
		kitchen := newActor(t, kernel.RoleKitchen)

		f.clock.Advance(30 * time.Second)

		reverted, compensating, err := f.undo.Undo(ctx, item, original.ID(), kitchen, "picked up by mistake")

		require.NoError(t, err)
		assert.Equal(t, orderitem.StatePending, reverted.CurrentState())
		assert.Nil(t, reverted.(*orderitem.OrderItem).StartedAt())
		assert.True(t, compensating.IsCompensating())
		require.NotNil(t, compensating.CompensatesEventID())
		assert.True(t, compensating.CompensatesEventID().IsEqual(original.ID()))
		assert.Equal(t, original.Seq()+1, compensating.Seq())

		// The original record is untouched in the log.
		stored, err := f.log.GetByID(ctx, original.ID())
		require.NoError(t, err)
		assert.Equal(t, original, stored)
	})

	t.Run("unknown_event_is_not_found", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.undo.Undo(ctx, newPendingItem(t), kernel.NewUUID(), newActor(t, kernel.RoleKitchen), "")

		assert.ErrorIs(t, err, lifecycle.ErrEventNotFound)
	})

	t.Run("irreversible_transition_is_rejected", func(t *testing.T) {
		f := newFixture(t)
		item, _ := pickUp(t, f)
		kitchen := newActor(t, kernel.RoleKitchen)

		ready, event, err := f.executor.Transition(ctx, item, orderitem.StateReady, kitchen, "")
		require.NoError(t, err)

		_, _, err = f.undo.Undo(ctx, ready, event.ID(), kitchen, "")

		assert.ErrorIs(t, err, lifecycle.ErrNotReversible)
	})

	t.Run("window_boundary_is_inclusive", func(t *testing.T) {
		f := newFixture(t)
		item, original := pickUp(t, f)
		kitchen := newActor(t, kernel.RoleKitchen)

		f.clock.Set(testStart.Add(orderitem.ReversalWindow))

		reverted, _, err := f.undo.Undo(ctx, item, original.ID(), kitchen, "")

		require.NoError(t, err)
		assert.Equal(t, orderitem.StatePending, reverted.CurrentState())
	})

	t.Run("past_window_is_expired", func(t *testing.T) {
		f := newFixture(t)
		item, original := pickUp(t, f)
		kitchen := newActor(t, kernel.RoleKitchen)

		f.clock.Set(testStart.Add(orderitem.ReversalWindow + time.Second))

		_, _, err := f.undo.Undo(ctx, item, original.ID(), kitchen, "")

		assert.ErrorIs(t, err, lifecycle.ErrUndoWindowExpired)
		assert.Equal(t, 1, f.log.Len())
	})

	t.Run("second_undo_is_already_compensated", func(t *testing.T) {
		f := newFixture(t)
		item, original := pickUp(t, f)
		kitchen := newActor(t, kernel.RoleKitchen)

		reverted, _, err := f.undo.Undo(ctx, item, original.ID(), kitchen, "")
		require.NoError(t, err)

		_, _, err = f.undo.Undo(ctx, reverted, original.ID(), kitchen, "")

		assert.ErrorIs(t, err, lifecycle.ErrAlreadyCompensated)
		assert.Equal(t, 2, f.log.Len())
	})

	t.Run("forbidden_undo_actor_leaves_log_untouched", func(t *testing.T) {
		f := newFixture(t)
		item, original := pickUp(t, f)

		_, _, err := f.undo.Undo(ctx, item, original.ID(), newActor(t, kernel.RoleWaiter), "")

		assert.ErrorIs(t, err, lifecycle.ErrTransitionForbidden)
		assert.Equal(t, 1, f.log.Len())
	})

	t.Run("unlock_reverses_a_storage_lock", func(t *testing.T) {
		f := newFixture(t)
		storekeeper := newActor(t, kernel.RoleStorekeeper)

		batch, err := storagebatch.RestoreStorageBatch(
			kernel.NewUUID(), "flour", 10, 0, storagebatch.StateAvailable,
			testStart.Add(-time.Hour), testStart.Add(48*time.Hour),
		)
		require.NoError(t, err)

		locked, lockEvent, err := f.executor.Transition(ctx, batch, storagebatch.StateLocked, storekeeper, "")
		require.NoError(t, err)

		f.clock.Advance(5 * time.Minute)

		unlocked, compensating, err := f.undo.Undo(ctx, locked, lockEvent.ID(), storekeeper, "")

		require.NoError(t, err)
		assert.Equal(t, storagebatch.StateAvailable, unlocked.CurrentState())
		assert.True(t, compensating.IsCompensating())
	})
}
