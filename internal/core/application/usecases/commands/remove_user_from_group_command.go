package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrRemoveUserFromGroupCommandIsNotConstructed = errors.New(
		"RemoveUserFromGroupCommand must be created via NewRemoveUserFromGroupCommand constructor",
	)
)

// RemoveUserFromGroupCommand represents a manager's request to revoke a
// user's group membership. The target is addressed by ID, matching the
// route shape of the membership listing.
type RemoveUserFromGroupCommand struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	userID kernel.UUID
	group  account.GroupName

	guard guard.ConstructorGuard
}

// NewRemoveUserFromGroupCommand creates a command to remove a user from a group.
func NewRemoveUserFromGroupCommand(
	actor account.Actor,
	userID kernel.UUID,
	group account.GroupName,
) (RemoveUserFromGroupCommand, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return RemoveUserFromGroupCommand{}, err
	}

	return RemoveUserFromGroupCommand{
		actor:  actor,
		userID: userID,
		group:  group,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveUserFromGroupCommand) Validate() error {
	return c.guard.Validate(ErrRemoveUserFromGroupCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c RemoveUserFromGroupCommand) Actor() account.Actor {
	return c.actor
}

// UserID returns the target user's identifier.
func (c RemoveUserFromGroupCommand) UserID() kernel.UUID {
	return c.userID
}

// Group returns the group to remove the user from.
func (c RemoveUserFromGroupCommand) Group() account.GroupName {
	return c.group
}
