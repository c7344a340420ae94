package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// AcceptCollectionCommandHandler binds the acting rider as the collection
// rider of a parcel. The repository's compare-and-swap update guarantees
// at-most-one winner when riders race: the loser's Update affects zero rows
// and surfaces as parcel.ErrConflictLost, never overwriting the winner.
type AcceptCollectionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptCollectionCommandHandler creates a handler for collection acceptance.
func NewAcceptCollectionCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AcceptCollectionCommandHandler {
	return AcceptCollectionCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h AcceptCollectionCommandHandler) Handle(ctx context.Context, cmd AcceptCollectionCommand) (*parcel.Parcel, error) {
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

	if _, err := uow.RiderRepository().Get(ctx, cmd.Rider().ID()); err != nil {
		return nil, err
	}

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.AcceptCollection(cmd.Rider().ID()); err != nil {
		return nil, err
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Rider().ID(),
		kernel.RoleRider,
		custody.EventCollectedFromCustomer,
		p.Route().PickupAddress(),
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

	notify(ctx, h.publisher, p, custody.EventCollectedFromCustomer)
	return p, nil
}
