package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a rider self-assigning the delivery leg
// of a parcel waiting at the warehouse. The rider's home zone must match
// the parcel's delivery zone; there is no override on this path.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	rider    Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a rider to accept a
// delivery job.
func NewAcceptDeliveryCommand(rider Actor, parcelID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rider.Validate(), parcelID.Validate()); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	cmd.rider = rider
	cmd.parcelID = parcelID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// Rider returns the acting rider.
func (c AcceptDeliveryCommand) Rider() Actor {
	return c.rider
}

// ParcelID returns the target parcel's identifier.
func (c AcceptDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
