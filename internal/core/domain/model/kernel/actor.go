package kernel

import (
	"errors"
	"fmt"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor or NewSystemActor factory functions.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or NewSystemActor")

// systemActorID is the well-known identity used for machine-triggered
// transitions such as scheduled batch expiry. It is stable across processes so
// that audit events produced by the platform itself are attributable.
var systemActorID = UUID{id: uuid.MustParse("00000000-0000-0000-0000-000000000001")}

// Role is the operational role an actor acts in. Identity resolution happens
// outside the domain; roles arrive pre-resolved with every request.
//
// Role is a closed set: transition rules reference these values in their
// allowed-role lists, and unknown roles fail validation at the boundary.
type Role string

const (
	// RoleKitchen is kitchen staff preparing order items.
	RoleKitchen Role = "kitchen"

	// RoleWaiter is front-of-house staff serving and cancelling order items.
	RoleWaiter Role = "waiter"

	// RoleManager is shift management, permitted to cancel and to write off stock.
	RoleManager Role = "manager"

	// RoleStorekeeper is storage staff receiving, locking, and consuming batches.
	RoleStorekeeper Role = "storekeeper"

	// RoleSystem is the platform itself, used for scheduled transitions
	// that have no human actor (e.g. batch expiry).
	RoleSystem Role = "system"
)

// getValidRoles returns the set of roles accepted by Validate.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleKitchen:     {},
		RoleWaiter:      {},
		RoleManager:     {},
		RoleStorekeeper: {},
		RoleSystem:      {},
	}
}

// Validate checks that the role belongs to the closed set of known roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// String returns the role identifier.
func (r Role) String() string {
	return string(r)
}

// Actor identifies who requests a lifecycle transition and in which role.
// It is a value object: immutable, compared by value, and safe for concurrent use.
//
// The domain performs no authentication. Callers resolve identity and role
// upstream and pass the result in; transition rules then decide whether the
// role may perform a given state change.
type Actor struct {
	id    UUID
	role  Role
	guard ConstructorGuard
}

// NewActor creates an Actor with a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// NewSystemActor creates the platform's own actor, used for scheduled
// transitions that have no human originator. Its identity is stable so audit
// events remain attributable across restarts.
func NewSystemActor() Actor {
	return Actor{
		id:    systemActorID,
		role:  RoleSystem,
		guard: NewConstructorGuard(),
	}
}

// ID returns the actor's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the role the actor acts in.
func (a Actor) Role() Role {
	return a.role
}

// IsSystem reports whether the actor is the platform itself.
func (a Actor) IsSystem() bool {
	return a.role == RoleSystem
}

// IsEqual compares two actors by identity and role.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id) && a.role == other.role
}

// Validate ensures the Actor was created through a constructor and carries a
// valid identity and role.
func (a Actor) Validate() error {
	if err := a.guard.Validate(ErrActorIsNotConstructed); err != nil {
		return err
	}

	return errors.Join(a.id.Validate(), a.role.Validate())
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
