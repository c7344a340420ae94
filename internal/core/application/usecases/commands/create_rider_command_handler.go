package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler registers a new rider.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider registration.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the created rider.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(cmd.Admin(), kernel.RoleAdmin); err != nil {
		return nil, err
	}

	r, err := rider.NewRider(kernel.NewUUID(), cmd.Name(), cmd.HomeZone())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RiderRepository().Add(ctx, r); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
