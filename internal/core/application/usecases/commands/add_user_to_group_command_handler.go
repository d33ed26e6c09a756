package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// AddUserToGroupCommandHandler handles group membership grants by managers.
// The target user is looked up by username; an unknown username is not found,
// and adding a user who is already a member is invalid input.
type AddUserToGroupCommandHandler struct {
	uowFactory DirectoryUoWFactory
	policy     services.AccessPolicy
}

// NewAddUserToGroupCommandHandler creates a handler for group additions.
func NewAddUserToGroupCommandHandler(uowFactory DirectoryUoWFactory) AddUserToGroupCommandHandler {
	return AddUserToGroupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the group addition command.
func (h AddUserToGroupCommandHandler) Handle(ctx context.Context, cmd AddUserToGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageGroups(cmd.Actor().Role()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = acc.AddToGroup(cmd.Group()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
