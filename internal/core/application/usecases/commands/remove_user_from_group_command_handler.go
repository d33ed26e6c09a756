package commands

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// RemoveUserFromGroupCommandHandler handles group membership revocations by
// managers. Removing a user who is not in the group is reported as not found,
// so the caller can distinguish it from a successful removal.
type RemoveUserFromGroupCommandHandler struct {
	uowFactory DirectoryUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveUserFromGroupCommandHandler creates a handler for group removals.
func NewRemoveUserFromGroupCommandHandler(uowFactory DirectoryUoWFactory) RemoveUserFromGroupCommandHandler {
	return RemoveUserFromGroupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the group removal command.
func (h RemoveUserFromGroupCommandHandler) Handle(ctx context.Context, cmd RemoveUserFromGroupCommand) error {
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
	acc, err := accountRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if removed := acc.RemoveFromGroup(cmd.Group()); !removed {
		return errs.NewObjectNotFoundError(string(cmd.Group()), cmd.UserID())
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
