package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand represents a request to delete every line in the acting
// customer's cart. Clearing an empty cart succeeds silently.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to clear a customer's cart.
func NewClearCartCommand(actor account.Actor) (ClearCartCommand, error) {
	if err := actor.Validate(); err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Actor returns the acting customer.
func (c ClearCartCommand) Actor() account.Actor {
	return c.actor
}
