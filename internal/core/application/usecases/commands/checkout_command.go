package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to convert the acting user's cart
// into an order. The conversion is atomic: the order, its item snapshots,
// and the cart deletion commit together or not at all.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(actor)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrEmptyCart) {
//	    // Nothing in the cart; no order was created.
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the actor's cart.
func NewCheckoutCommand(actor account.Actor) (CheckoutCommand, error) {
	if err := actor.Validate(); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c CheckoutCommand) Actor() account.Actor {
	return c.actor
}
