package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var ErrExpireStorageBatchesCommandIsNotConstructed = errors.New(
	"ExpireStorageBatchesCommand must be created via NewExpireStorageBatchesCommand constructor",
)

// ExpireStorageBatchesCommand triggers the system-driven sweep that moves
// overdue available batches to expired. This is a parameterless command issued
// by the scheduler, not by a human actor.
type ExpireStorageBatchesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireStorageBatchesCommand creates a new command to trigger the expiry sweep.
func NewExpireStorageBatchesCommand() ExpireStorageBatchesCommand {
	return ExpireStorageBatchesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireStorageBatchesCommandIsNotConstructed if validation fails.
func (c *ExpireStorageBatchesCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireStorageBatchesCommandIsNotConstructed,
	)
}
