package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/commands"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var frozenAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item *orderitem.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockOrderItemRepository) Update(ctx context.Context, item *orderitem.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*orderitem.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderitem.OrderItem), args.Error(1)
}

type MockStorageBatchRepository struct{ mock.Mock }

func (m *MockStorageBatchRepository) Add(ctx context.Context, batch *storagebatch.StorageBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
func (m *MockStorageBatchRepository) Update(ctx context.Context, batch *storagebatch.StorageBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
func (m *MockStorageBatchRepository) Get(ctx context.Context, id kernel.UUID) (*storagebatch.StorageBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storagebatch.StorageBatch), args.Error(1)
}
func (m *MockStorageBatchRepository) GetAllOverdueAvailable(ctx context.Context, now time.Time) ([]*storagebatch.StorageBatch, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storagebatch.StorageBatch), args.Error(1)
}

type MockOrderItemUoW struct{ mock.Mock }

func (m *MockOrderItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderItemUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}
func (m *MockOrderItemUoW) EventLog() ports.EventLog {
	args := m.Called()
	return args.Get(0).(ports.EventLog)
}

type MockOrderItemUoWFactory struct{ mock.Mock }

func (m *MockOrderItemUoWFactory) Create() commands.OrderItemUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderItemUoW)
}

type MockStorageBatchUoW struct{ mock.Mock }

func (m *MockStorageBatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStorageBatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStorageBatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStorageBatchUoW) StorageBatchRepository() ports.StorageBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageBatchRepository)
}
func (m *MockStorageBatchUoW) EventLog() ports.EventLog {
	args := m.Called()
	return args.Get(0).(ports.EventLog)
}

type MockStorageBatchUoWFactory struct{ mock.Mock }

func (m *MockStorageBatchUoWFactory) Create() commands.StorageBatchUoW {
	args := m.Called()
	return args.Get(0).(commands.StorageBatchUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}
func (m *MockUoW) StorageBatchRepository() ports.StorageBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageBatchRepository)
}
func (m *MockUoW) EventLog() ports.EventLog {
	args := m.Called()
	return args.Get(0).(ports.EventLog)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// newTestRegistry registers both rule tables the way the composition root does.
func newTestRegistry(t *testing.T) *lifecycle.Registry {
	t.Helper()

	registry := lifecycle.NewRegistry()

	itemRules, err := orderitem.Rules()
	require.NoError(t, err)
	require.NoError(t, registry.Register(lifecycle.KindOrderItem, itemRules))

	batchRules, err := storagebatch.Rules()
	require.NoError(t, err)
	require.NoError(t, registry.Register(lifecycle.KindStorageBatch, batchRules))

	return registry
}

func kitchenActor(t *testing.T) kernel.Actor {
	t.Helper()

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleKitchen)
	require.NoError(t, err)
	return actor
}
