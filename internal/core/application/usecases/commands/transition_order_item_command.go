package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var ErrTransitionOrderItemCommandIsNotConstructed = errors.New(
	"TransitionOrderItemCommand must be created via NewTransitionOrderItemCommand constructor",
)

// TransitionOrderItemCommand requests a state change on an order line.
// The acting staff member and an optional audit note travel with the request;
// whether the transition is legal is decided by the rule table, not here.
//
// Example:
//
//	actor, _ := kernel.NewActor(staffID, kernel.RoleKitchen)
//	cmd, err := NewTransitionOrderItemCommand(itemID, "in_progress", actor, "")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	event, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, lifecycle.ErrTransitionForbidden) {
//	    // staff member is not allowed to do this
//	}
type TransitionOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	target lifecycle.State
	actor  kernel.Actor
	note   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderItemCommand creates a command to move an order line to
// the target state. Validates the identifier, the target state, and the actor.
func NewTransitionOrderItemCommand(
	itemID kernel.UUID,
	target lifecycle.State,
	actor kernel.Actor,
	note string,
) (TransitionOrderItemCommand, error) {
	transitionCommand := TransitionOrderItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setItemID(itemID),
		transitionCommand.setTarget(target),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionOrderItemCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderItemCommandIsNotConstructed if validation fails.
func (c TransitionOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the order line to transition.
func (c TransitionOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Target returns the requested target state.
func (c TransitionOrderItemCommand) Target() lifecycle.State {
	return c.target
}

// Actor returns the staff member requesting the transition.
func (c TransitionOrderItemCommand) Actor() kernel.Actor {
	return c.actor
}

// Note returns the audit note, empty when none was given.
func (c TransitionOrderItemCommand) Note() string {
	return c.note
}

func (c *TransitionOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *TransitionOrderItemCommand) setTarget(target lifecycle.State) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderItemCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
