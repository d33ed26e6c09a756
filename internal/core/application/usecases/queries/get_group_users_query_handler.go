package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGroupUsersQueryHandler retrieves the accounts belonging to a directory
// group. Only managers may read the directory.
type GetGroupUsersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetGroupUsersQueryHandler creates a handler for group listings.
func NewGetGroupUsersQueryHandler(db *gorm.DB) GetGroupUsersQueryHandler {
	return GetGroupUsersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the listing, sorted by username for stable output.
func (h GetGroupUsersQueryHandler) Handle(
	ctx context.Context,
	query GetGroupUsersQuery,
) ([]GroupUserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageGroups(query.Actor().Role()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.username
		FROM accounts a
		JOIN account_groups ag ON ag.account_id = a.id
		WHERE ag.group_name = ?
		ORDER BY a.username
	`, string(query.Group())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GroupUserResponse, 0)

	for rows.Next() {
		var (
			id       uuid.UUID
			username string
		)

		if err = rows.Scan(&id, &username); err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		users = append(users, GroupUserResponse{ID: accountID, Username: username})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
