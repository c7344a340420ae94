package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// warehouseLocation is the free-text location recorded on hub-side custody
// entries.
const warehouseLocation = "warehouse"

// MarkAtWarehouseCommandHandler records the hub handoff reported by the
// bound collection rider and appends the ARRIVED_AT_WAREHOUSE custody entry
// in the same transaction.
type MarkAtWarehouseCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkAtWarehouseCommandHandler creates a handler for warehouse arrivals.
func NewMarkAtWarehouseCommandHandler(uowFactory ParcelUoWFactory, publisher ports.EventPublisher) MarkAtWarehouseCommandHandler {
	return MarkAtWarehouseCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h MarkAtWarehouseCommandHandler) Handle(ctx context.Context, cmd MarkAtWarehouseCommand) (*parcel.Parcel, error) {
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

	if err = p.MarkAtWarehouse(cmd.Rider().ID()); err != nil {
		return nil, err
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Rider().ID(),
		kernel.RoleRider,
		custody.EventArrivedAtWarehouse,
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

	notify(ctx, h.publisher, p, custody.EventArrivedAtWarehouse)
	return p, nil
}
