package commands

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddUserToGroupCommandIsNotConstructed = errors.New(
		"AddUserToGroupCommand must be created via NewAddUserToGroupCommand constructor",
	)
)

// AddUserToGroupCommand represents a manager's request to grant a user the
// role that comes with a group membership.
type AddUserToGroupCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	username string
	group    account.GroupName

	guard guard.ConstructorGuard
}

// NewAddUserToGroupCommand creates a command to add a user to a group.
func NewAddUserToGroupCommand(
	actor account.Actor,
	username string,
	group account.GroupName,
) (AddUserToGroupCommand, error) {
	cmd := AddUserToGroupCommand{
		group: group,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setUsername(username),
	); err != nil {
		return AddUserToGroupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddUserToGroupCommand) Validate() error {
	return c.guard.Validate(ErrAddUserToGroupCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c AddUserToGroupCommand) Actor() account.Actor {
	return c.actor
}

// Username returns the target user's username.
func (c AddUserToGroupCommand) Username() string {
	return c.username
}

// Group returns the group to add the user to.
func (c AddUserToGroupCommand) Group() account.GroupName {
	return c.group
}

func (c *AddUserToGroupCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddUserToGroupCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}
