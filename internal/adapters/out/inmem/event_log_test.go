package inmem_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/inmem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, entityID kernel.UUID, from, to lifecycle.State, occurredAt time.Time) lifecycle.EventRecord {
	t.Helper()

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleKitchen)
	require.NoError(t, err)

	record, err := lifecycle.NewEventRecord(
		lifecycle.KindOrderItem, entityID, from, to, actor, occurredAt, "",
	)
	require.NoError(t, err)
	return record
}

func TestEventLog_Append(t *testing.T) {
	ctx := context.Background()
	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("assigns_gapless_ascending_seq", func(t *testing.T) {
		log := inmem.NewEventLog()
		entityID := kernel.NewUUID()

		first, err := log.Append(ctx, newRecord(t, entityID, "pending", "in_progress", occurredAt))
		require.NoError(t, err)
		second, err := log.Append(ctx, newRecord(t, entityID, "in_progress", "ready", occurredAt))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.Seq())
		assert.Equal(t, int64(2), second.Seq())
	})

	t.Run("rejects_already_sequenced_record", func(t *testing.T) {
		log := inmem.NewEventLog()

		stamped, err := log.Append(ctx, newRecord(t, kernel.NewUUID(), "pending", "in_progress", occurredAt))
		require.NoError(t, err)

		_, err = log.Append(ctx, stamped)

		require.Error(t, err)
		var infraErr *lifecycle.InfrastructureError
		assert.ErrorAs(t, err, &infraErr)
	})

	t.Run("concurrent_appends_never_skip_or_reuse_seq", func(t *testing.T) {
		log := inmem.NewEventLog()
		const appends = 50

		var wg sync.WaitGroup
		seqs := make(chan int64, appends)
		for range appends {
			wg.Add(1)
			go func() {
				defer wg.Done()
				stamped, err := log.Append(ctx, newRecord(t, kernel.NewUUID(), "pending", "in_progress", occurredAt))
				require.NoError(t, err)
				seqs <- stamped.Seq()
			}()
		}
		wg.Wait()
		close(seqs)

		seen := make(map[int64]bool, appends)
		for seq := range seqs {
			assert.False(t, seen[seq])
			seen[seq] = true
		}
		for seq := int64(1); seq <= appends; seq++ {
			assert.True(t, seen[seq])
		}
	})
}

func TestEventLog_LatestByEntity(t *testing.T) {
	ctx := context.Background()
	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns_most_recent_record", func(t *testing.T) {
		log := inmem.NewEventLog()
		entityID := kernel.NewUUID()

		_, err := log.Append(ctx, newRecord(t, entityID, "pending", "in_progress", occurredAt))
		require.NoError(t, err)
		_, err = log.Append(ctx, newRecord(t, kernel.NewUUID(), "pending", "cancelled", occurredAt))
		require.NoError(t, err)
		second, err := log.Append(ctx, newRecord(t, entityID, "in_progress", "ready", occurredAt))
		require.NoError(t, err)

		latest, err := log.LatestByEntity(ctx, lifecycle.KindOrderItem, entityID)

		require.NoError(t, err)
		assert.Equal(t, second.ID(), latest.ID())
	})

	t.Run("unknown_entity_is_not_found", func(t *testing.T) {
		log := inmem.NewEventLog()

		_, err := log.LatestByEntity(ctx, lifecycle.KindOrderItem, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestEventLog_FindCompensation(t *testing.T) {
	ctx := context.Background()
	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleKitchen)

	log := inmem.NewEventLog()
	entityID := kernel.NewUUID()

	original, err := log.Append(ctx, newRecord(t, entityID, "pending", "in_progress", occurredAt))
	require.NoError(t, err)

	t.Run("no_compensation_yet", func(t *testing.T) {
		_, found, err := log.FindCompensation(ctx, original.ID())

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("finds_compensating_record", func(t *testing.T) {
		compensating, err := lifecycle.NewCompensatingEventRecord(
			lifecycle.KindOrderItem, entityID, "in_progress", "pending",
			actor, occurredAt.Add(time.Minute), "", original.ID(),
		)
		require.NoError(t, err)
		appended, err := log.Append(ctx, compensating)
		require.NoError(t, err)

		found, ok, err := log.FindCompensation(ctx, original.ID())

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, appended.ID(), found.ID())
		assert.True(t, found.IsCompensating())
	})
}

func TestEventLog_Queries(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	log := inmem.NewEventLog()
	entityID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	_, err := log.Append(ctx, newRecord(t, entityID, "pending", "in_progress", base))
	require.NoError(t, err)
	_, err = log.Append(ctx, newRecord(t, otherID, "pending", "cancelled", base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = log.Append(ctx, newRecord(t, entityID, "in_progress", "ready", base.Add(2*time.Hour)))
	require.NoError(t, err)

	t.Run("by_entity_in_ascending_seq_order", func(t *testing.T) {
		var seqs []int64
		for record, err := range log.QueryByEntity(ctx, entityID) {
			require.NoError(t, err)
			seqs = append(seqs, record.Seq())
		}

		assert.Equal(t, []int64{1, 3}, seqs)
	})

	t.Run("sequence_is_restartable", func(t *testing.T) {
		query := log.QueryByEntity(ctx, entityID)

		for range 2 {
			count := 0
			for _, err := range query {
				require.NoError(t, err)
				count++
			}
			assert.Equal(t, 2, count)
		}
	})

	t.Run("by_kind_and_range_bounds_are_inclusive", func(t *testing.T) {
		var seqs []int64
		for record, err := range log.QueryByKindAndRange(ctx, lifecycle.KindOrderItem, base, base.Add(time.Hour)) {
			require.NoError(t, err)
			seqs = append(seqs, record.Seq())
		}

		assert.Equal(t, []int64{1, 2}, seqs)
	})
}
