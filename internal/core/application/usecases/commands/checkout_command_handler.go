package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CheckoutCommandHandler converts a cart into an order snapshot.
//
// The whole conversion runs in one transaction: reading the lines, writing
// the order with its item snapshots, and clearing the cart. A failure at any
// point rolls everything back, so there is never an order without its items
// or a cleared cart without an order.
//
// An empty cart is rejected with order.ErrEmptyCart; a zero-total order is
// never created.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	policy     services.AccessPolicy
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the checkout command and returns the new order's ID.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.policy.CanCheckout(cmd.Actor()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	lines, err := cartRepo.GetAllByCustomer(ctx, cmd.Actor().ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.Actor().ID(), lines, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = cartRepo.DeleteAllByCustomer(ctx, cmd.Actor().ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
