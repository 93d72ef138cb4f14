package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var ErrUndoTransitionCommandIsNotConstructed = errors.New(
	"UndoTransitionCommand must be created via NewUndoTransitionCommand constructor",
)

// UndoTransitionCommand requests reversing an earlier transition identified
// by its event. The affected entity kind is learned from the event itself, so
// one command serves both order items and storage batches.
//
// Example:
//
//	actor, _ := kernel.NewActor(staffID, kernel.RoleKitchen)
//	cmd, err := NewUndoTransitionCommand(eventID, actor, "picked up by mistake")
//	if err != nil {
//	    return err
//	}
//
//	compensating, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, lifecycle.ErrUndoWindowExpired) {
//	    // too late, the transition stands
//	}
type UndoTransitionCommand struct { //nolint:recvcheck //using for validation
	eventID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewUndoTransitionCommand creates a command to reverse the transition
// recorded by the given event. Validates the event identifier and the actor.
func NewUndoTransitionCommand(eventID kernel.UUID, actor kernel.Actor, reason string) (UndoTransitionCommand, error) {
	undoCommand := UndoTransitionCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		undoCommand.setEventID(eventID),
		undoCommand.setActor(actor),
	); err != nil {
		return UndoTransitionCommand{}, err
	}

	return undoCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUndoTransitionCommandIsNotConstructed if validation fails.
func (c UndoTransitionCommand) Validate() error {
	return c.guard.Validate(ErrUndoTransitionCommandIsNotConstructed)
}

// EventID returns the identifier of the event to reverse.
func (c UndoTransitionCommand) EventID() kernel.UUID {
	return c.eventID
}

// Actor returns the staff member requesting the undo.
func (c UndoTransitionCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the caller's explanation, recorded as the note of the
// compensating event.
func (c UndoTransitionCommand) Reason() string {
	return c.reason
}

func (c *UndoTransitionCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}

func (c *UndoTransitionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
