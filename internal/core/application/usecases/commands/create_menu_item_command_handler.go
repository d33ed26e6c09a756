package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/services"
)

// CreateMenuItemCommandHandler handles catalog additions by managers.
// The owning category is loaded inside the transaction so a dangling
// category reference is rejected before the insert.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the command and returns the new item's ID.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.policy.CanManageMenu(cmd.Actor().Role()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return kernel.UUID{}, err
	}

	item, err := menu.NewItem(kernel.NewUUID(), cmd.Title(), cmd.Price(), cmd.Featured(), cmd.CategoryID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return item.ID(), nil
}
