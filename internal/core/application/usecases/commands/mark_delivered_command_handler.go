package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// MarkDeliveredCommandHandler finalizes a parcel. For high-value parcels
// the delivery gate must have been verified first; the aggregate rejects
// the transition otherwise.
type MarkDeliveredCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory ParcelUoWFactory, publisher ports.EventPublisher) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*parcel.Parcel, error) {
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

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.MarkDelivered(cmd.Rider().ID()); err != nil {
		return nil, err
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Rider().ID(),
		kernel.RoleRider,
		custody.EventDelivered,
		p.Route().DeliveryAddress(),
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

	notify(ctx, h.publisher, p, custody.EventDelivered)
	return p, nil
}
