package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// DispatchParcelCommandHandler performs the admin dispatch: it binds a
// delivery rider to a parcel at the warehouse and transitions the parcel
// out for delivery. From the outside dispatch is a single atomic call, even
// though the ledger records it as two events: the admin-side
// DISPATCHED_TO_RIDER and the rider-side OUT_FOR_DELIVERY.
type DispatchParcelCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchParcelCommandHandler creates a handler for admin dispatch.
func NewDispatchParcelCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h DispatchParcelCommandHandler) Handle(ctx context.Context, cmd DispatchParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Admin(), kernel.RoleAdmin); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.AssignDeliveryRider(r.ID(), r.HomeZone(), cmd.Override()); err != nil {
		return nil, err
	}
	if err = p.StartDelivery(); err != nil {
		return nil, err
	}

	dispatched, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Admin().ID(),
		kernel.RoleAdmin,
		custody.EventDispatchedToRider,
		warehouseLocation,
		"assigned to "+r.Name(),
	)
	if err != nil {
		return nil, err
	}

	outForDelivery, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		r.ID(),
		kernel.RoleRider,
		custody.EventOutForDelivery,
		warehouseLocation,
		"",
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.CustodyLogRepository().Append(ctx, dispatched); err != nil {
		return nil, err
	}
	if err = uow.CustodyLogRepository().Append(ctx, outForDelivery); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.publisher, p, custody.EventOutForDelivery)
	return p, nil
}
