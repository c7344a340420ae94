package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/services"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// It prices the declared value through the fee engine, draws a tracking code
// and, for high-value parcels, two independent handoff codes from the
// credential generator, and appends the ORDER_PLACED custody entry in the
// same transaction the parcel is persisted in.
type CreateParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	fees        services.FeeCalculator
	credentials services.CredentialGenerator
	publisher   ports.EventPublisher
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	fees services.FeeCalculator,
	credentials services.CredentialGenerator,
	publisher ports.EventPublisher,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:  uowFactory,
		fees:        fees,
		credentials: credentials,
		publisher:   publisher,
	}
}

// Handle processes the parcel creation command and returns the created
// parcel, including its tracking code and fee breakdown.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Customer(), kernel.RoleCustomer); err != nil {
		return nil, err
	}

	quote, err := h.fees.Calculate(cmd.DeclaredValue())
	if err != nil {
		return nil, err
	}

	trackingCode, err := h.credentials.TrackingCode()
	if err != nil {
		return nil, err
	}

	var warehouseCode, deliveryCode string
	if quote.HighValue {
		if warehouseCode, err = h.credentials.VerificationCode(); err != nil {
			return nil, err
		}
		if deliveryCode, err = h.credentials.VerificationCode(); err != nil {
			return nil, err
		}
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		trackingCode,
		cmd.Customer().ID(),
		cmd.Route(),
		cmd.Description(),
		cmd.Size(),
		cmd.DeclaredValue(),
		quote.BaseFee,
		quote.ProtectionFee,
		quote.HighValue,
		warehouseCode,
		deliveryCode,
	)
	if err != nil {
		return nil, err
	}

	entry, err := custody.NewEntry(
		kernel.NewUUID(),
		p.ID(),
		cmd.Customer().ID(),
		kernel.RoleCustomer,
		custody.EventOrderPlaced,
		p.Route().PickupAddress(),
		"",
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.CustodyLogRepository().Append(ctx, entry); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.publisher, p, custody.EventOrderPlaced)
	return p, nil
}
