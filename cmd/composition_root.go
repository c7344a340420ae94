package cmd

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "github.com/chiefroqa/baruk-app/internal/adapters/in/http"
	"github.com/chiefroqa/baruk-app/internal/adapters/out/postgres"
	"github.com/chiefroqa/baruk-app/internal/adapters/out/redispub"
	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/commands"
	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/domain/services"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// CompositionRoot wires adapters to use cases. All handlers share one GORM
// connection pool and one Redis client.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

// NewCompositionRoot builds the object graph from the opened connections.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  redispub.NewRedisPublisher(redisClient),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(
		f,
		services.NewFeeCalculator(),
		services.NewCredentialGenerator(),
		c.publisher,
	)
}

func (c *CompositionRoot) CreateAcceptCollectionCommandHandler() commands.AcceptCollectionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptCollectionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkAtWarehouseCommandHandler() commands.MarkAtWarehouseCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAtWarehouseCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDispatchParcelCommandHandler() commands.DispatchParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchParcelCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateVerifyHandoffCodeCommandHandler() commands.VerifyHandoffCodeCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyHandoffCodeCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedParcelsQueryHandler() queries.GetUnassignedParcelsQueryHandler {
	return queries.NewGetUnassignedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustodyLogQueryHandler() queries.GetCustodyLogQueryHandler {
	return queries.NewGetCustodyLogQueryHandler(c.gormDB)
}

// Publisher exposes the shared event publisher for background jobs.
func (c *CompositionRoot) Publisher() ports.EventPublisher {
	return c.publisher
}

// CreateHTTPServer assembles the HTTP server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateAcceptCollectionCommandHandler(),
		c.CreateMarkAtWarehouseCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreateDispatchParcelCommandHandler(),
		c.CreateVerifyHandoffCodeCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateCreateRiderCommandHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetUnassignedParcelsQueryHandler(),
		c.CreateGetCustodyLogQueryHandler(),
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
