package queries

import (
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetGroupUsersQueryIsNotConstructed = errors.New(
		"GetGroupUsersQuery must be created via NewGetGroupUsersQuery constructor",
	)
)

// GetGroupUsersQuery lists the members of a directory group. Managers only.
type GetGroupUsersQuery struct {
	actor account.Actor
	group account.GroupName

	guard guard.ConstructorGuard
}

// NewGetGroupUsersQuery creates a group membership listing query.
func NewGetGroupUsersQuery(actor account.Actor, group account.GroupName) (GetGroupUsersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetGroupUsersQuery{}, err
	}

	return GetGroupUsersQuery{
		actor: actor,
		group: group,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGroupUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupUsersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetGroupUsersQuery) Actor() account.Actor {
	return q.actor
}

// Group returns the group whose members are listed.
func (q GetGroupUsersQuery) Group() account.GroupName {
	return q.group
}

// GroupUserResponse is one group member row.
type GroupUserResponse struct {
	ID       kernel.UUID
	Username string
}
