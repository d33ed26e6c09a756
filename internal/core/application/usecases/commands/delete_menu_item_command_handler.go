package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// DeleteMenuItemCommandHandler handles catalog removals by managers.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the menu item deletion command.
func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageMenu(cmd.Actor().Role()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.MenuItemRepository()
	if _, err := itemRepo.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := itemRepo.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
