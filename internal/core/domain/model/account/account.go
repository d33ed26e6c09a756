package account

import (
	"errors"
	"fmt"
	"sort"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is the aggregate root for a user of the ordering system. It holds
// the identity, the staff flag, and the group memberships from which the
// conceptual role is derived.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty username
//   - Group membership is a set: at most one entry per group
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id       kernel.UUID
	username string
	isStaff  bool
	groups   map[GroupName]struct{}

	isConstructed bool
}

// NewAccount creates a validated Account with no group memberships.
func NewAccount(id kernel.UUID, username string, isStaff bool) (*Account, error) {
	account := &Account{
		isStaff:       isStaff,
		groups:        make(map[GroupName]struct{}),
		isConstructed: true,
	}

	if err := errors.Join(
		account.setID(id),
		account.setUsername(username),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account from persistence, including its
// stored group memberships.
func RestoreAccount(id kernel.UUID, username string, isStaff bool, groups []GroupName) (*Account, error) {
	account, err := NewAccount(id, username, isStaff)
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		account.groups[group] = struct{}{}
	}

	return account, nil
}

// Validate ensures the Account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Username returns the account's login name.
func (a *Account) Username() string {
	return a.username
}

// IsStaff reports whether the account is flagged as restaurant staff.
// Staff accounts act as managers.
func (a *Account) IsStaff() bool {
	return a.isStaff
}

// Groups returns the account's group memberships in stable order.
func (a *Account) Groups() []GroupName {
	groups := make([]GroupName, 0, len(a.groups))
	for g := range a.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// IsInGroup reports membership in a single group.
func (a *Account) IsInGroup(group GroupName) bool {
	_, ok := a.groups[group]
	return ok
}

// Role resolves the account's conceptual role from the staff flag and group
// memberships. Precedence: staff and manager group members are managers,
// then delivery crew, otherwise customer. The precedence makes the role
// well-defined even for accounts that belong to both groups.
func (a *Account) Role() Role {
	if a.isStaff || a.IsInGroup(GroupManager) {
		return RoleManager
	}
	if a.IsInGroup(GroupDeliveryCrew) {
		return RoleDeliveryCrew
	}
	return RoleCustomer
}

// Actor returns the explicit (id, role) pair threaded through use cases.
func (a *Account) Actor() Actor {
	return Actor{id: a.id, role: a.Role()}
}

// AddToGroup adds the account to a group.
// Duplicate membership is an error so the directory endpoint can surface it.
func (a *Account) AddToGroup(group GroupName) error {
	if a.IsInGroup(group) {
		return errs.NewValueIsInvalidErrorWithCause("group membership",
			fmt.Errorf("account %s is already in group %s", a.username, group))
	}
	a.groups[group] = struct{}{}
	return nil
}

// RemoveFromGroup removes the account from a group and reports whether the
// account was a member. Callers distinguish "removed" from "not present".
func (a *Account) RemoveFromGroup(group GroupName) bool {
	if !a.IsInGroup(group) {
		return false
	}
	delete(a.groups, group)
	return true
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

// Actor is the resolved identity a request acts under: who, and in which
// role. It is immutable and passed explicitly to every cart and order
// operation.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the acting account's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the request acts under.
func (a Actor) Role() Role {
	return a.role
}

// Validate rejects the zero value.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
