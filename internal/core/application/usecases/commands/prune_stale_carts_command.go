package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPruneStaleCartsCommandIsNotConstructed = errors.New(
		"PruneStaleCartsCommand must be created via NewPruneStaleCartsCommand constructor",
	)
)

// PruneStaleCartsCommand represents a maintenance sweep that drops cart
// lines untouched for longer than the retention window. It is issued by the
// background janitor, not by a user, so it carries no actor.
type PruneStaleCartsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPruneStaleCartsCommand creates a command to prune stale cart lines.
func NewPruneStaleCartsCommand(retention time.Duration) (PruneStaleCartsCommand, error) {
	if retention <= 0 {
		return PruneStaleCartsCommand{}, errs.NewValueIsRequiredError("retention")
	}

	return PruneStaleCartsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PruneStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPruneStaleCartsCommandIsNotConstructed)
}

// Retention returns how long a cart line may sit untouched before pruning.
func (c PruneStaleCartsCommand) Retention() time.Duration {
	return c.retention
}
