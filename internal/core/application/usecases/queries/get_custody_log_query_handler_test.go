package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres/custodyrepo"
	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
)

type GetCustodyLogQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *custodyrepo.GormCustodyLogRepository
	handler    queries.GetCustodyLogQueryHandler
}

func (suite *GetCustodyLogQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&custodyrepo.EntryDTO{}))

	suite.repository = custodyrepo.NewGormCustodyLogRepository(db)
	suite.handler = queries.NewGetCustodyLogQueryHandler(db)
}

func (suite *GetCustodyLogQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE custody_entries").Error)
}

func (suite *GetCustodyLogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCustodyLogQueryHandlerTestSuite) TestHandle_ReturnsTrailOldestFirst() {
	ctx := context.Background()
	parcelID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	suite.appendEntry(parcelID, customerID, kernel.RoleCustomer,
		custody.EventOrderPlaced, "12 Pickup Lane", "")
	time.Sleep(10 * time.Millisecond)
	suite.appendEntry(parcelID, riderID, kernel.RoleRider,
		custody.EventCollectedFromCustomer, "12 Pickup Lane", "")

	// Entries for other parcels stay out of the trail.
	suite.appendEntry(kernel.NewUUID(), customerID, kernel.RoleCustomer,
		custody.EventOrderPlaced, "99 Other St", "")

	query, err := queries.NewGetCustodyLogQuery(parcelID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(string(custody.EventOrderPlaced), result[0].Kind)
	suite.Equal(string(kernel.RoleCustomer), result[0].ActorRole)
	suite.True(result[0].ActorID.IsEqual(customerID))
	suite.Equal("12 Pickup Lane", result[0].Location)
	suite.Equal(string(custody.EventCollectedFromCustomer), result[1].Kind)
	suite.True(result[1].ActorID.IsEqual(riderID))
	suite.True(result[0].CreatedAt.Before(result[1].CreatedAt))
}

func (suite *GetCustodyLogQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsEmptySlice() {
	query, err := queries.NewGetCustodyLogQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustodyLogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustodyLogQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustodyLogQuery constructor")
}

func (suite *GetCustodyLogQueryHandlerTestSuite) appendEntry(
	parcelID, actorID kernel.UUID,
	role kernel.Role,
	kind custody.EventKind,
	location, note string,
) {
	entry, err := custody.NewEntry(kernel.NewUUID(), parcelID, actorID, role, kind, location, note)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(context.Background(), entry))
}

func TestGetCustodyLogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustodyLogQueryHandlerTestSuite))
}
