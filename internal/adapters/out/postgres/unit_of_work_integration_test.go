package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres/eventlogrepo"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres/orderitemrepo"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres/storagebatchrepo"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderitemrepo.OrderItemDTO{},
		&storagebatchrepo.StorageBatchDTO{},
		&eventlogrepo.EventDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, storage_batches, lifecycle_events").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newItem() *orderitem.OrderItem {
	item, err := orderitem.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), "carbonara", 2)
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) newEvent(entityID kernel.UUID) lifecycle.EventRecord {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleKitchen)
	suite.Require().NoError(err)

	record, err := lifecycle.NewEventRecord(
		lifecycle.KindOrderItem, entityID,
		orderitem.StatePending, orderitem.StateInProgress,
		actor, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), "",
	)
	suite.Require().NoError(err)
	return record
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsSnapshotAndEventTogether() {
	ctx := context.Background()
	item := suite.newItem()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	err := uow.OrderItemRepository().Add(ctx, item)
	suite.Require().NoError(err)

	stamped, err := uow.EventLog().Append(ctx, suite.newEvent(item.ID()))
	suite.Require().NoError(err)
	suite.Equal(int64(1), stamped.Seq())

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := orderitemrepo.NewGormOrderItemRepository(suite.db, noopTracker{}).Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(item.ID(), loaded.ID())

	reloaded, err := eventlogrepo.NewGormEventLog(suite.db).GetByID(ctx, stamped.ID())
	suite.Require().NoError(err)
	suite.Equal(stamped.Seq(), reloaded.Seq())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsSnapshotAndEventTogether() {
	ctx := context.Background()
	item := suite.newItem()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	err := uow.OrderItemRepository().Add(ctx, item)
	suite.Require().NoError(err)

	stamped, err := uow.EventLog().Append(ctx, suite.newEvent(item.ID()))
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = orderitemrepo.NewGormOrderItemRepository(suite.db, noopTracker{}).Get(ctx, item.ID())
	suite.Require().Error(err)

	_, err = eventlogrepo.NewGormEventLog(suite.db).GetByID(ctx, stamped.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

// noopTracker satisfies the repositories' tracker dependency when they are
// used outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
