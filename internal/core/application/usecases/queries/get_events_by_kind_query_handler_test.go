package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/adapters/out/postgres/eventlogrepo"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/queries"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/orderitem"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/storagebatch"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetEventsByKindQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	log       *eventlogrepo.GormEventLog
	handler   queries.GetEventsByKindQueryHandler
}

func (suite *GetEventsByKindQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&eventlogrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.log = eventlogrepo.NewGormEventLog(db)
	suite.handler = queries.NewGetEventsByKindQueryHandler(db)
}

func (suite *GetEventsByKindQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetEventsByKindQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE lifecycle_events").Error
	suite.Require().NoError(err)
}

func (suite *GetEventsByKindQueryHandlerTestSuite) appendEvent(
	kind lifecycle.Kind,
	from, to lifecycle.State,
	occurredAt time.Time,
) lifecycle.EventRecord {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleManager)
	suite.Require().NoError(err)

	record, err := lifecycle.NewEventRecord(
		kind, kernel.NewUUID(), from, to, actor, occurredAt, "",
	)
	suite.Require().NoError(err)

	stamped, err := suite.log.Append(context.Background(), record)
	suite.Require().NoError(err)
	return stamped
}

func (suite *GetEventsByKindQueryHandlerTestSuite) TestHandle_FiltersByKindAndRange() {
	shiftStart := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	shiftEnd := shiftStart.Add(8 * time.Hour)

	suite.appendEvent(
		lifecycle.KindStorageBatch, storagebatch.StateReceived, storagebatch.StateAvailable,
		shiftStart.Add(-time.Minute),
	)
	inside := suite.appendEvent(
		lifecycle.KindStorageBatch, storagebatch.StateAvailable, storagebatch.StateLocked,
		shiftStart.Add(time.Hour),
	)
	suite.appendEvent(
		lifecycle.KindOrderItem, orderitem.StatePending, orderitem.StateInProgress,
		shiftStart.Add(2*time.Hour),
	)

	query, err := queries.NewGetEventsByKindQuery(lifecycle.KindStorageBatch, shiftStart, shiftEnd)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(inside.ID(), events[0].EventID)
	suite.Equal(inside.EntityID(), events[0].EntityID)
	suite.Equal(storagebatch.StateAvailable, events[0].FromState)
	suite.Equal(storagebatch.StateLocked, events[0].ToState)
	suite.Equal(kernel.RoleManager, events[0].ActorRole)
}

func (suite *GetEventsByKindQueryHandlerTestSuite) TestHandle_RangeBoundsAreInclusive() {
	shiftStart := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	shiftEnd := shiftStart.Add(8 * time.Hour)

	atStart := suite.appendEvent(
		lifecycle.KindOrderItem, orderitem.StatePending, orderitem.StateInProgress, shiftStart,
	)
	atEnd := suite.appendEvent(
		lifecycle.KindOrderItem, orderitem.StateInProgress, orderitem.StateReady, shiftEnd,
	)

	query, err := queries.NewGetEventsByKindQuery(lifecycle.KindOrderItem, shiftStart, shiftEnd)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(atStart.ID(), events[0].EventID)
	suite.Equal(atEnd.ID(), events[1].EventID)
}

func (suite *GetEventsByKindQueryHandlerTestSuite) TestHandle_EmptyRange_ReturnsEmptySlice() {
	query, err := queries.NewGetEventsByKindQuery(
		lifecycle.KindOrderItem,
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	events, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(events)
	suite.Empty(events)
}

func (suite *GetEventsByKindQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetEventsByKindQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetEventsByKindQueryIsNotConstructed)
}

func TestGetEventsByKindQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetEventsByKindQueryHandlerTestSuite))
}
