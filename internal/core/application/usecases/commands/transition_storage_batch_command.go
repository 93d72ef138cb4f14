package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var ErrTransitionStorageBatchCommandIsNotConstructed = errors.New(
	"TransitionStorageBatchCommand must be created via NewTransitionStorageBatchCommand constructor",
)

// TransitionStorageBatchCommand requests a state change on a storage batch:
// making it available, locking or unlocking a reservation, or writing it off.
// Consumption with an amount goes through ConsumeStorageBatchCommand instead.
type TransitionStorageBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	target  lifecycle.State
	actor   kernel.Actor
	note    string

	guard guard.ConstructorGuard
}

// NewTransitionStorageBatchCommand creates a command to move a batch to the
// target state. Validates the identifier, the target state, and the actor.
func NewTransitionStorageBatchCommand(
	batchID kernel.UUID,
	target lifecycle.State,
	actor kernel.Actor,
	note string,
) (TransitionStorageBatchCommand, error) {
	transitionCommand := TransitionStorageBatchCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setBatchID(batchID),
		transitionCommand.setTarget(target),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionStorageBatchCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionStorageBatchCommandIsNotConstructed if validation fails.
func (c TransitionStorageBatchCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStorageBatchCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch to transition.
func (c TransitionStorageBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Target returns the requested target state.
func (c TransitionStorageBatchCommand) Target() lifecycle.State {
	return c.target
}

// Actor returns the staff member requesting the transition.
func (c TransitionStorageBatchCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the audit note, empty when none was given.
func (c TransitionStorageBatchCommand) Note() string {
	return c.note
}

func (c *TransitionStorageBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *TransitionStorageBatchCommand) setTarget(target lifecycle.State) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionStorageBatchCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
