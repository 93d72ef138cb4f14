package cmd

import (
	"fmt"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/commands"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/queries"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *lifecycle.Registry
	clock      clock.Clock
}

// NewCompositionRoot wires the application together. Rule tables are
// registered here, at process start; a configuration error is fatal and must
// halt startup before any request is served.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	registry, err := buildRegistry()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		clock:      clock.NewSystem(),
	}, nil
}

func buildRegistry() (*lifecycle.Registry, error) {
	registry := lifecycle.NewRegistry()

	itemRules, err := orderitem.Rules()
	if err != nil {
		return nil, fmt.Errorf("failed to build order item rules: %w", err)
	}
	if err = registry.Register(lifecycle.KindOrderItem, itemRules); err != nil {
		return nil, fmt.Errorf("failed to register order item rules: %w", err)
	}

	batchRules, err := storagebatch.Rules()
	if err != nil {
		return nil, fmt.Errorf("failed to build storage batch rules: %w", err)
	}
	if err = registry.Register(lifecycle.KindStorageBatch, batchRules); err != nil {
		return nil, fmt.Errorf("failed to register storage batch rules: %w", err)
	}

	return registry, nil
}

func (c *CompositionRoot) CreateCreateOrderItemCommandHandler() commands.CreateOrderItemCommandHandler {
	var f commands.OrderItemUoWFactory = FuncOrderItemUoWFactory(func() commands.OrderItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveStorageBatchCommandHandler() commands.ReceiveStorageBatchCommandHandler {
	var f commands.StorageBatchUoWFactory = FuncStorageBatchUoWFactory(func() commands.StorageBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveStorageBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderItemCommandHandler() commands.TransitionOrderItemCommandHandler {
	var f commands.OrderItemUoWFactory = FuncOrderItemUoWFactory(func() commands.OrderItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderItemCommandHandler(c.registry, c.clock, f)
}

func (c *CompositionRoot) CreateTransitionStorageBatchCommandHandler() commands.TransitionStorageBatchCommandHandler {
	var f commands.StorageBatchUoWFactory = FuncStorageBatchUoWFactory(func() commands.StorageBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionStorageBatchCommandHandler(c.registry, c.clock, f)
}

func (c *CompositionRoot) CreateConsumeStorageBatchCommandHandler() commands.ConsumeStorageBatchCommandHandler {
	var f commands.StorageBatchUoWFactory = FuncStorageBatchUoWFactory(func() commands.StorageBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConsumeStorageBatchCommandHandler(c.registry, c.clock, f)
}

func (c *CompositionRoot) CreateUndoTransitionCommandHandler() commands.UndoTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUndoTransitionCommandHandler(c.registry, c.clock, f)
}

func (c *CompositionRoot) CreateExpireStorageBatchesCommandHandler() commands.ExpireStorageBatchesCommandHandler {
	var f commands.StorageBatchUoWFactory = FuncStorageBatchUoWFactory(func() commands.StorageBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStorageBatchesCommandHandler(c.registry, c.clock, f)
}

func (c *CompositionRoot) CreateGetEntityHistoryQueryHandler() queries.GetEntityHistoryQueryHandler {
	return queries.NewGetEntityHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEventsByKindQueryHandler() queries.GetEventsByKindQueryHandler {
	return queries.NewGetEventsByKindQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllowedTransitionsQueryHandler() queries.GetAllowedTransitionsQueryHandler {
	return queries.NewGetAllowedTransitionsQueryHandler(c.registry)
}

type FuncOrderItemUoWFactory func() commands.OrderItemUoW

func (f FuncOrderItemUoWFactory) Create() commands.OrderItemUoW {
	return f()
}

type FuncStorageBatchUoWFactory func() commands.StorageBatchUoW

func (f FuncStorageBatchUoWFactory) Create() commands.StorageBatchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
