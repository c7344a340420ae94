package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "github.com/chiefroqa/baruk-app/internal/adapters/out/postgres"
	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres/custodyrepo"
	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres/riderrepo"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/rider"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &riderrepo.RiderDTO{}, &custodyrepo.EntryDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, riders, custody_entries").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.RiderRepository())
	suite.NotNil(uow1.CustodyLogRepository())
	suite.NotNil(uow2.ParcelRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe; transactions do not nest.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ParcelAndLedgerCommitTogether verifies the core transaction
// boundary: a parcel write and its custody entry persist atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ParcelAndLedgerCommitTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel("BRK-COMMITTED")
	entry := suite.createOrderPlacedEntry(testParcel)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.CustodyLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible outside the transaction.
	verify := suite.factory.Create()
	persisted, err := verify.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(persisted.ID().IsEqual(testParcel.ID()))

	entries, err := verify.CustodyLogRepository().ListByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(custody.EventOrderPlaced, entries[0].Kind())
}

// TestUnitOfWork_RollbackDiscardsBothWrites verifies that rolling back
// discards the parcel and its ledger entry together; no partial writes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsBothWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createTestParcel("BRK-DISCARDED")
	entry := suite.createOrderPlacedEntry(testParcel)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.CustodyLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().Error(err)

	entries, err := verify.CustodyLogRepository().ListByParcel(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

// TestUnitOfWork_CrossAggregateTransaction verifies rider and parcel writes
// share a transaction when performed through one unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrossAggregateTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testRider, err := rider.NewRider(kernel.NewUUID(), "Amara", kernel.ZoneNorth)
	suite.Require().NoError(err)
	testParcel := suite.createTestParcel("BRK-CROSSAGG")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RiderRepository().Add(ctx, testRider))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	persistedRider, err := verify.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Equal("Amara", persistedRider.Name())

	persistedParcel, err := verify.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(persistedParcel.ID().IsEqual(testParcel.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel(trackingCode string) *parcel.Parcel {
	route, err := parcel.NewRoute("12 Pickup Lane", "7 Delivery Close", kernel.ZoneNorth)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingCode, kernel.NewUUID(), route,
		"books", parcel.SizeSmall, 3000, 200, 0, false, "", "")
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrderPlacedEntry(p *parcel.Parcel) *custody.Entry {
	entry, err := custody.NewEntry(kernel.NewUUID(), p.ID(), p.CustomerID(),
		kernel.RoleCustomer, custody.EventOrderPlaced, p.Route().PickupAddress(), "")
	suite.Require().NoError(err)
	return entry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
