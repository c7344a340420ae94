package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand represents an admin registering a rider with a home zone.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	admin    Actor
	name     string
	homeZone kernel.Zone

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider.
func NewCreateRiderCommand(admin Actor, name string, homeZone kernel.Zone) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(admin.Validate(), homeZone.Validate()); err != nil {
		return CreateRiderCommand{}, err
	}
	if name == "" {
		return CreateRiderCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.admin = admin
	cmd.name = name
	cmd.homeZone = homeZone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// Admin returns the acting admin.
func (c CreateRiderCommand) Admin() Actor {
	return c.admin
}

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// HomeZone returns the zone the rider serves.
func (c CreateRiderCommand) HomeZone() kernel.Zone {
	return c.homeZone
}
