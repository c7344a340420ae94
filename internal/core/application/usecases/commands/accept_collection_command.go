package commands

import (
	"errors"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

var ErrAcceptCollectionCommandIsNotConstructed = errors.New(
	"AcceptCollectionCommand must be created via NewAcceptCollectionCommand constructor",
)

// AcceptCollectionCommand represents a rider's request to take custody of a
// parcel that is still searching for a collection rider. Any number of
// riders may race on the same parcel; exactly one wins the binding.
type AcceptCollectionCommand struct { //nolint:recvcheck //using for validation
	rider    Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptCollectionCommand creates a command for a rider to accept a
// collection job.
func NewAcceptCollectionCommand(rider Actor, parcelID kernel.UUID) (AcceptCollectionCommand, error) {
	cmd := AcceptCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(rider.Validate(), parcelID.Validate()); err != nil {
		return AcceptCollectionCommand{}, err
	}

	cmd.rider = rider
	cmd.parcelID = parcelID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptCollectionCommand) Validate() error {
	return c.guard.Validate(ErrAcceptCollectionCommandIsNotConstructed)
}

// Rider returns the acting rider.
func (c AcceptCollectionCommand) Rider() Actor {
	return c.rider
}

// ParcelID returns the target parcel's identifier.
func (c AcceptCollectionCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
