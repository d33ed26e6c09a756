package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// DeleteMenuItemCommand represents a manager's request to remove a catalog
// entry. Existing cart lines and order snapshots are untouched: they carry
// their own copies of the item's price.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(actor account.Actor, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(actor.Validate(), itemID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		actor:  actor,
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c DeleteMenuItemCommand) Actor() account.Actor {
	return c.actor
}

// ItemID returns the target item's identifier.
func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
