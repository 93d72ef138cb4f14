package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrConsumeStorageBatchCommandIsNotConstructed = errors.New(
		"ConsumeStorageBatchCommand must be created via NewConsumeStorageBatchCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// ConsumeStorageBatchCommand requests drawing an amount from a batch.
// A draw that exhausts the batch moves it to consumed; a partial draw keeps
// the batch in its current state with a reduced remaining amount. Either way
// the draw is recorded as one audit event.
type ConsumeStorageBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	amount  int
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewConsumeStorageBatchCommand creates a command to draw the given amount
// from a batch. Validates the identifier, the amount, and the actor. Whether
// the amount fits the batch is decided by the rule table's guard, not here.
func NewConsumeStorageBatchCommand(batchID kernel.UUID, amount int, actor kernel.Actor) (ConsumeStorageBatchCommand, error) {
	consumeCommand := ConsumeStorageBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		consumeCommand.setBatchID(batchID),
		consumeCommand.setAmount(amount),
		consumeCommand.setActor(actor),
	); err != nil {
		return ConsumeStorageBatchCommand{}, err
	}

	return consumeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConsumeStorageBatchCommandIsNotConstructed if validation fails.
func (c ConsumeStorageBatchCommand) Validate() error {
	return c.guard.Validate(ErrConsumeStorageBatchCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch to draw from.
func (c ConsumeStorageBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Amount returns the requested draw amount.
func (c ConsumeStorageBatchCommand) Amount() int {
	return c.amount
}

// Actor returns the staff member requesting the draw.
func (c ConsumeStorageBatchCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ConsumeStorageBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ConsumeStorageBatchCommand) setAmount(amount int) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *ConsumeStorageBatchCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
