package commands

import (
	"errors"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/guard"
)

var (
	ErrCreateOrderItemCommandIsNotConstructed = errors.New(
		"CreateOrderItemCommand must be created via NewCreateOrderItemCommand constructor",
	)
	ErrDishIsRequired    = errors.New("dish is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateOrderItemCommand represents a request to register a new order line
// in its initial pending state.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateOrderItemCommand(itemID, orderID, "carbonara", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order item data: %w", err)
//	}
//
//	handler := NewCreateOrderItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order item: %w", err)
//	}
type CreateOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	orderID  kernel.UUID
	dish     string
	quantity int

	guard guard.ConstructorGuard
}

// NewCreateOrderItemCommand creates a command to register a new order line.
// Validates that both identifiers are valid, the dish is not empty, and the
// quantity is positive.
func NewCreateOrderItemCommand(itemID, orderID kernel.UUID, dish string, quantity int) (CreateOrderItemCommand, error) {
	itemCommand := CreateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setOrderID(orderID),
		itemCommand.setDish(dish),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderItemCommandIsNotConstructed if validation fails.
func (c CreateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the order item.
func (c CreateOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// OrderID returns the identifier of the order this line belongs to.
func (c CreateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Dish returns the name of the ordered dish.
func (c CreateOrderItemCommand) Dish() string {
	return c.dish
}

// Quantity returns the ordered quantity.
func (c CreateOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderItemCommand) setDish(dish string) error {
	if dish == "" {
		return ErrDishIsRequired
	}

	c.dish = dish
	return nil
}

func (c *CreateOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
