package ports

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for accounts and their
// group memberships (the group directory).
type AccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, acc *account.Account) error

	// Update persists account changes, including group membership edits.
	Update(ctx context.Context, acc *account.Account) error

	// Get retrieves an account with its group memberships.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)

	// GetAllInGroup retrieves every member of a group.
	GetAllInGroup(ctx context.Context, group account.GroupName) ([]*account.Account, error)
}
