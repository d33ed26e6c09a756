package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// ClearCartCommandHandler handles full-cart deletion. Individual line
// removal is intentionally unsupported; the cart is cleared as a whole here
// or consumed by checkout.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cart clearing command. Idempotent: an already empty
// cart clears without error.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanUseCart(cmd.Actor().Role()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().DeleteAllByCustomer(ctx, cmd.Actor().ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
