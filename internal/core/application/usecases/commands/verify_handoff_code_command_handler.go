package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// VerifyHandoffCodeCommandHandler checks a submitted handoff code against
// the stored one and flips the matching verified flag. The flag and the
// OTP custody entry commit together. A mismatch mutates nothing and appends
// nothing; failed attempts are deliberately not ledgered.
type VerifyHandoffCodeCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  ports.EventPublisher
}

// NewVerifyHandoffCodeCommandHandler creates a handler for code verification.
func NewVerifyHandoffCodeCommandHandler(uowFactory ParcelUoWFactory, publisher ports.EventPublisher) VerifyHandoffCodeCommandHandler {
	return VerifyHandoffCodeCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the command and returns the updated parcel.
func (h VerifyHandoffCodeCommandHandler) Handle(ctx context.Context, cmd VerifyHandoffCodeCommand) (*parcel.Parcel, error) {
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

	var kind custody.EventKind
	var location string
	switch cmd.Gate() {
	case GateWarehouse:
		if err = p.VerifyWarehouseCode(cmd.Rider().ID(), cmd.SubmittedCode()); err != nil {
			return nil, err
		}
		kind = custody.EventOTPWarehouseVerified
		location = warehouseLocation
	case GateDelivery:
		if err = p.VerifyDeliveryCode(cmd.Rider().ID(), cmd.SubmittedCode()); err != nil {
			return nil, err
		}
		kind = custody.EventOTPDeliveryVerified
		location = p.Route().DeliveryAddress()
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Rider().ID(),
		kernel.RoleRider,
		kind,
		location,
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

	notify(ctx, h.publisher, p, kind)
	return p, nil
}
