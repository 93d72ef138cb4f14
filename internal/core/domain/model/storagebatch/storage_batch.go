package storagebatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

var (
	// ErrStorageBatchIsNotConstructed is returned when a StorageBatch instance
	// was not created through the NewStorageBatch or RestoreStorageBatch
	// factory functions.
	ErrStorageBatchIsNotConstructed = errors.New("StorageBatch must be created via NewStorageBatch or RestoreStorageBatch")
)

// StorageBatch is a received lot of an ingredient tracked from receipt through
// reservation, consumption, and waste.
//
// grossIn is the amount that arrived; usedAmount accumulates draws against it.
// A draw is requested by setting a pending amount on the snapshot (see
// WithPendingDraw); the consume rules' guard predicate rejects draws that
// exceed what remains, and their transform folds the pending amount into
// usedAmount. Whether an exactly-exhausting draw also moves the batch to the
// consumed state is decided by the caller choosing the target state, not by
// the engine.
type StorageBatch struct {
	// id is the unique identifier of the batch
	id kernel.UUID

	// ingredient names the stocked good
	ingredient string

	// grossIn is the received amount in stock units (must be positive)
	grossIn int

	// usedAmount accumulates consumed stock, 0 <= usedAmount <= grossIn
	usedAmount int

	// pendingDraw is the draw requested for the current transition, folded
	// into usedAmount by the consume transform and zeroed afterwards
	pendingDraw int

	// state is the current storage lifecycle state
	state lifecycle.State

	// receivedAt is when the batch arrived
	receivedAt time.Time

	// bestBefore bounds how long the batch may be offered for use
	bestBefore time.Time

	// guard ensures the batch was created via a factory function
	guard kernel.ConstructorGuard
}

// NewStorageBatch creates a newly received batch in the received state.
func NewStorageBatch(id kernel.UUID, ingredient string, grossIn int, receivedAt, bestBefore time.Time) (*StorageBatch, error) {
	batch := &StorageBatch{
		state: StateReceived,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setIngredient(ingredient),
		batch.setGrossIn(grossIn),
		batch.setTimes(receivedAt, bestBefore),
	); err != nil {
		return nil, err
	}

	return batch, nil
}

// RestoreStorageBatch reconstructs a batch from persistent storage, including
// its lifecycle state and usage counter.
func RestoreStorageBatch(
	id kernel.UUID,
	ingredient string,
	grossIn, usedAmount int,
	state lifecycle.State,
	receivedAt, bestBefore time.Time,
) (*StorageBatch, error) {
	batch := &StorageBatch{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setIngredient(ingredient),
		batch.setGrossIn(grossIn),
		batch.setTimes(receivedAt, bestBefore),
		batch.setState(state),
	); err != nil {
		return nil, err
	}

	if usedAmount < 0 || usedAmount > batch.grossIn {
		return nil, errs.NewValueIsOutOfRangeError("usedAmount", usedAmount, 0, batch.grossIn)
	}
	batch.usedAmount = usedAmount
	return batch, nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *StorageBatch) IsEqual(other *StorageBatch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *StorageBatch) ID() kernel.UUID {
	return b.id
}

// Ingredient returns the stocked good's name.
func (b *StorageBatch) Ingredient() string {
	return b.ingredient
}

// GrossIn returns the received amount in stock units.
func (b *StorageBatch) GrossIn() int {
	return b.grossIn
}

// UsedAmount returns the accumulated consumed amount.
func (b *StorageBatch) UsedAmount() int {
	return b.usedAmount
}

// Remaining returns the amount still available for draws.
func (b *StorageBatch) Remaining() int {
	return b.grossIn - b.usedAmount
}

// PendingDraw returns the draw requested for the current transition, 0 when none.
func (b *StorageBatch) PendingDraw() int {
	return b.pendingDraw
}

// ReceivedAt returns when the batch arrived.
func (b *StorageBatch) ReceivedAt() time.Time {
	return b.receivedAt
}

// BestBefore returns the batch's best-before instant.
func (b *StorageBatch) BestBefore() time.Time {
	return b.bestBefore
}

// IsOverdue reports whether the batch has passed its best-before instant.
func (b *StorageBatch) IsOverdue(now time.Time) bool {
	return now.After(b.bestBefore)
}

// WithPendingDraw returns a copy of the snapshot carrying a requested draw.
// The amount must be positive; whether it fits the remaining stock is decided
// by the consume rules' guard predicate, so an oversized request surfaces as
// a forbidden transition rather than a validation error here.
func (b *StorageBatch) WithPendingDraw(amount int) (*StorageBatch, error) {
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%d is not greater than 0", amount))
	}

	copied := b.clone()
	copied.pendingDraw = amount
	return copied, nil
}

// EntityID implements lifecycle.Entity.
func (b *StorageBatch) EntityID() kernel.UUID {
	return b.id
}

// EntityKind implements lifecycle.Entity.
func (b *StorageBatch) EntityKind() lifecycle.Kind {
	return lifecycle.KindStorageBatch
}

// CurrentState implements lifecycle.Entity.
func (b *StorageBatch) CurrentState() lifecycle.State {
	return b.state
}

// WithState implements lifecycle.Entity: it returns a copy of the snapshot
// placed in the given state, leaving the receiver untouched.
func (b *StorageBatch) WithState(state lifecycle.State) lifecycle.Entity {
	copied := b.clone()
	copied.state = state
	return copied
}

// Validate ensures the StorageBatch instance was properly constructed.
func (b *StorageBatch) Validate() error {
	if b == nil {
		return ErrStorageBatchIsNotConstructed
	}
	return b.guard.Validate(ErrStorageBatchIsNotConstructed)
}

func (b *StorageBatch) clone() *StorageBatch {
	copied := *b
	return &copied
}

func (b *StorageBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *StorageBatch) setIngredient(ingredient string) error {
	if ingredient == "" {
		return errs.NewValueIsRequiredError("ingredient is required")
	}
	b.ingredient = ingredient
	return nil
}

func (b *StorageBatch) setGrossIn(grossIn int) error {
	if grossIn <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("grossIn is invalid", fmt.Errorf("%d is not greater than 0", grossIn))
	}
	b.grossIn = grossIn
	return nil
}

func (b *StorageBatch) setTimes(receivedAt, bestBefore time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receivedAt is required")
	}
	if bestBefore.IsZero() {
		return errs.NewValueIsRequiredError("bestBefore is required")
	}
	if bestBefore.Before(receivedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"bestBefore is invalid",
			fmt.Errorf("%s is before receipt at %s", bestBefore, receivedAt),
		)
	}

	b.receivedAt = receivedAt
	b.bestBefore = bestBefore
	return nil
}

func (b *StorageBatch) setState(state lifecycle.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	b.state = state
	return nil
}
