package commands

import (
	"errors"
	"fmt"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the verified identity performing a command: who the caller is and
// which role the identity collaborator established for them. The role always
// comes from a verified token, never from the request payload.
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role kernel.Role

	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role kernel.Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	actor.id = id
	actor.role = role
	return actor, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's verified role.
func (a Actor) Role() kernel.Role {
	return a.role
}

// requireRole rejects actors whose verified role does not match the one the
// operation is gated on.
func requireRole(actor Actor, want kernel.Role) error {
	if actor.role != want {
		return parcel.NewTransitionRejectedError(parcel.ErrWrongActor,
			fmt.Sprintf("operation requires role %s, caller has role %s", want, actor.role))
	}
	return nil
}
