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

	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

type TrackParcelQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	handler    queries.TrackParcelQueryHandler
}

func (suite *TrackParcelQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))

	suite.repository = parcelrepo.NewGormParcelRepository(db, noopTracker{})
	suite.handler = queries.NewTrackParcelQueryHandler(db)
}

func (suite *TrackParcelQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
}

func (suite *TrackParcelQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackParcelQueryHandlerTestSuite) TestHandle_ExistingParcel_ReturnsTrackingView() {
	ctx := context.Background()

	route, err := parcel.NewRoute("12 Pickup Lane", "7 Delivery Close", kernel.ZoneNorth)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), "BRK-TRACKED1", kernel.NewUUID(), route,
		"camera gear", parcel.SizeMedium, 15000, 200, 225, true, "1234", "5678")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	query, err := queries.NewTrackParcelQuery("BRK-TRACKED1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(p.ID()))
	suite.Equal("BRK-TRACKED1", result.TrackingCode)
	suite.Equal("searching_rider", result.Status)
	suite.Equal("12 Pickup Lane", result.PickupAddress)
	suite.Equal("7 Delivery Close", result.DeliveryAddress)
	suite.Equal(kernel.ZoneNorth, result.DeliveryZone)
	suite.Equal(string(parcel.SizeMedium), result.SizeClass)
	suite.True(result.HighValue)
	suite.Equal(200, result.BaseFee)
	suite.Equal(225, result.ProtectionFee)
	suite.Equal(425, result.TotalFee)
}

func (suite *TrackParcelQueryHandlerTestSuite) TestHandle_UnknownTrackingCode_ReturnsNotFoundError() {
	query, err := queries.NewTrackParcelQuery("BRK-MISSING1")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TrackParcelQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TrackParcelQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewTrackParcelQuery constructor")
}

func TestTrackParcelQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackParcelQueryHandlerTestSuite))
}
