package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// AcceptDeliveryCommandHandler binds the acting rider as the delivery rider
// of a parcel at the warehouse. The rider's home zone is loaded from the
// rider repository, never taken from the request. The compare-and-swap
// update guarantees at-most-one winner when riders race for the same job.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Rider(), kernel.RoleRider); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RiderRepository().Get(ctx, cmd.Rider().ID())
	if err != nil {
		return nil, err
	}

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.AcceptDelivery(r.ID(), r.HomeZone()); err != nil {
		return nil, err
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		r.ID(),
		kernel.RoleRider,
		custody.EventAcceptedDeliveryJob,
		warehouseLocation,
		"",
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.CustodyLogRepository().Append(ctx, entry); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.publisher, p, custody.EventAcceptedDeliveryJob)
	return p, nil
}
