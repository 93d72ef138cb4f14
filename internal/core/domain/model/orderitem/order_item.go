package orderitem

import (
	"errors"
	"fmt"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
	// not created through the NewOrderItem or RestoreOrderItem factory functions.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")
)

// OrderItem is one line of a guest order moving through kitchen stages.
//
// The item itself carries no transition logic: every state change goes
// through the lifecycle engine and its registered rule table. The struct is a
// snapshot owned by the order store; the engine derives updated snapshots and
// never holds on to one between calls.
//
// Invariants:
//   - Must have valid item and order identifiers
//   - Dish name must not be empty, quantity must be positive
//   - Must be created through a factory function
type OrderItem struct {
	// id is the unique identifier of the order line
	id kernel.UUID

	// orderID references the guest order the line belongs to
	orderID kernel.UUID

	// dish is the menu item being prepared
	dish string

	// quantity is the number of portions (must be positive)
	quantity int

	// state is the current kitchen lifecycle state
	state lifecycle.State

	// startedAt is stamped when the kitchen picks the item up
	startedAt *time.Time

	// readyAt is stamped when preparation finishes
	readyAt *time.Time

	// servedAt is stamped when the item reaches the table
	servedAt *time.Time

	// guard ensures the item was created via a factory function
	guard kernel.ConstructorGuard
}

// NewOrderItem creates a new order line in the pending state.
func NewOrderItem(id, orderID kernel.UUID, dish string, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		state: StatePending,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setDish(dish),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an order line from persistent storage,
// including its lifecycle state and preparation timestamps.
func RestoreOrderItem(
	id, orderID kernel.UUID,
	dish string,
	quantity int,
	state lifecycle.State,
	startedAt, readyAt, servedAt *time.Time,
) (*OrderItem, error) {
	item := &OrderItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setDish(dish),
		item.setQuantity(quantity),
		item.setState(state),
	); err != nil {
		return nil, err
	}

	item.startedAt = copyTime(startedAt)
	item.readyAt = copyTime(readyAt)
	item.servedAt = copyTime(servedAt)
	return item, nil
}

// IsEqual compares two order lines by their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the order line's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the guest order the line belongs to.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// Dish returns the menu item being prepared.
func (i *OrderItem) Dish() string {
	return i.dish
}

// Quantity returns the number of portions.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// StartedAt returns when the kitchen picked the item up, nil if it hasn't.
func (i *OrderItem) StartedAt() *time.Time {
	return copyTime(i.startedAt)
}

// ReadyAt returns when preparation finished, nil if it hasn't.
func (i *OrderItem) ReadyAt() *time.Time {
	return copyTime(i.readyAt)
}

// ServedAt returns when the item reached the table, nil if it hasn't.
func (i *OrderItem) ServedAt() *time.Time {
	return copyTime(i.servedAt)
}

// EntityID implements lifecycle.Entity.
func (i *OrderItem) EntityID() kernel.UUID {
	return i.id
}

// EntityKind implements lifecycle.Entity.
func (i *OrderItem) EntityKind() lifecycle.Kind {
	return lifecycle.KindOrderItem
}

// CurrentState implements lifecycle.Entity.
func (i *OrderItem) CurrentState() lifecycle.State {
	return i.state
}

// WithState implements lifecycle.Entity: it returns a copy of the snapshot
// placed in the given state, leaving the receiver untouched.
func (i *OrderItem) WithState(state lifecycle.State) lifecycle.Entity {
	copied := i.clone()
	copied.state = state
	return copied
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// clone returns a deep copy of the snapshot.
func (i *OrderItem) clone() *OrderItem {
	copied := *i
	copied.startedAt = copyTime(i.startedAt)
	copied.readyAt = copyTime(i.readyAt)
	copied.servedAt = copyTime(i.servedAt)
	return &copied
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *OrderItem) setDish(dish string) error {
	if dish == "" {
		return errs.NewValueIsRequiredError("dish is required")
	}
	i.dish = dish
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setState(state lifecycle.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	i.state = state
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
