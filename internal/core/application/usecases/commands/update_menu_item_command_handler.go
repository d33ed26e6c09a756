package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// UpdateMenuItemCommandHandler handles catalog edits by managers.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the menu item update command.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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
	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if _, err = uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err = item.Update(cmd.Title(), cmd.Price(), cmd.Featured(), cmd.CategoryID()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
