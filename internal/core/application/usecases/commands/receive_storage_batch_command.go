package commands

import (
	"errors"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrReceiveStorageBatchCommandIsNotConstructed = errors.New(
		"ReceiveStorageBatchCommand must be created via NewReceiveStorageBatchCommand constructor",
	)
	ErrIngredientIsRequired = errors.New("ingredient is required")
	ErrGrossInIsInvalid     = errors.New("grossIn must be greater than 0")
	ErrBestBeforeIsInvalid  = errors.New("bestBefore must not precede receivedAt")
)

// ReceiveStorageBatchCommand represents the registration of a newly received
// ingredient batch in its initial received state.
type ReceiveStorageBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	ingredient string
	grossIn    int
	receivedAt time.Time
	bestBefore time.Time

	guard guard.ConstructorGuard
}

// NewReceiveStorageBatchCommand creates a command to register a received batch.
// Validates the identifier, the ingredient name, the received amount, and that
// the best-before instant does not precede receipt.
func NewReceiveStorageBatchCommand(
	batchID kernel.UUID,
	ingredient string,
	grossIn int,
	receivedAt, bestBefore time.Time,
) (ReceiveStorageBatchCommand, error) {
	batchCommand := ReceiveStorageBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setBatchID(batchID),
		batchCommand.setIngredient(ingredient),
		batchCommand.setGrossIn(grossIn),
		batchCommand.setWindow(receivedAt, bestBefore),
	); err != nil {
		return ReceiveStorageBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveStorageBatchCommandIsNotConstructed if validation fails.
func (c ReceiveStorageBatchCommand) Validate() error {
	return c.guard.Validate(ErrReceiveStorageBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the batch.
func (c ReceiveStorageBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Ingredient returns the name of the received ingredient.
func (c ReceiveStorageBatchCommand) Ingredient() string {
	return c.ingredient
}

// GrossIn returns the received amount.
func (c ReceiveStorageBatchCommand) GrossIn() int {
	return c.grossIn
}

// ReceivedAt returns when the batch arrived.
func (c ReceiveStorageBatchCommand) ReceivedAt() time.Time {
	return c.receivedAt
}

// BestBefore returns the expiry deadline of the batch.
func (c ReceiveStorageBatchCommand) BestBefore() time.Time {
	return c.bestBefore
}

func (c *ReceiveStorageBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ReceiveStorageBatchCommand) setIngredient(ingredient string) error {
	if ingredient == "" {
		return ErrIngredientIsRequired
	}

	c.ingredient = ingredient
	return nil
}

func (c *ReceiveStorageBatchCommand) setGrossIn(grossIn int) error {
	if grossIn <= 0 {
		return ErrGrossInIsInvalid
	}

	c.grossIn = grossIn
	return nil
}

func (c *ReceiveStorageBatchCommand) setWindow(receivedAt, bestBefore time.Time) error {
	if bestBefore.Before(receivedAt) {
		return ErrBestBeforeIsInvalid
	}

	c.receivedAt = receivedAt
	c.bestBefore = bestBefore
	return nil
}
