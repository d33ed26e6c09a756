package commands

import (
	"context"
	"time"
)

// PruneStaleCartsCommandHandler deletes cart lines older than the retention
// window. Checkout clears carts inside its own transaction, so the sweep can
// never race an order snapshot into losing lines.
type PruneStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPruneStaleCartsCommandHandler creates a handler for the cart sweep.
func NewPruneStaleCartsCommandHandler(uowFactory CartUoWFactory) PruneStaleCartsCommandHandler {
	return PruneStaleCartsCommandHandler{uowFactory: uowFactory}
}

// Handle runs the sweep and returns the number of lines removed.
func (h PruneStaleCartsCommandHandler) Handle(ctx context.Context, cmd PruneStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.Retention())
	pruned, err := uow.CartRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return pruned, nil
}
