package account_test

import (
	"testing"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()
		acc, err := account.NewAccount(id, "maria", false)
		require.NoError(t, err)
		assert.True(t, acc.ID().IsEqual(id))
		assert.Equal(t, "maria", acc.Username())
		assert.False(t, acc.IsStaff())
		assert.Empty(t, acc.Groups())
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := account.NewAccount(kernel.UUID{}, "maria", false)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestAccount_Validate(t *testing.T) {
	var notConstructed account.Account
	require.ErrorIs(t, notConstructed.Validate(), account.ErrAccountIsNotConstructed)

	acc, err := account.NewAccount(kernel.NewUUID(), "maria", false)
	require.NoError(t, err)
	require.NoError(t, acc.Validate())
}

func TestAccount_RoleResolution(t *testing.T) {
	tests := []struct {
		name    string
		isStaff bool
		groups  []account.GroupName
		want    account.Role
	}{
		{"no groups is customer", false, nil, account.RoleCustomer},
		{"manager group", false, []account.GroupName{account.GroupManager}, account.RoleManager},
		{"delivery crew group", false, []account.GroupName{account.GroupDeliveryCrew}, account.RoleDeliveryCrew},
		{"staff flag wins without groups", true, nil, account.RoleManager},
		{"staff flag wins over delivery crew", true, []account.GroupName{account.GroupDeliveryCrew}, account.RoleManager},
		{
			"manager precedence over delivery crew",
			false,
			[]account.GroupName{account.GroupDeliveryCrew, account.GroupManager},
			account.RoleManager,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := account.RestoreAccount(kernel.NewUUID(), "someone", tt.isStaff, tt.groups)
			require.NoError(t, err)
			assert.Equal(t, tt.want, acc.Role())
			assert.Equal(t, tt.want, acc.Actor().Role())
		})
	}
}

func TestAccount_GroupMembership(t *testing.T) {
	t.Run("add then remove", func(t *testing.T) {
		acc, err := account.NewAccount(kernel.NewUUID(), "joe", false)
		require.NoError(t, err)

		require.NoError(t, acc.AddToGroup(account.GroupDeliveryCrew))
		assert.True(t, acc.IsInGroup(account.GroupDeliveryCrew))

		assert.True(t, acc.RemoveFromGroup(account.GroupDeliveryCrew))
		assert.False(t, acc.IsInGroup(account.GroupDeliveryCrew))
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		acc, err := account.NewAccount(kernel.NewUUID(), "joe", false)
		require.NoError(t, err)

		require.NoError(t, acc.AddToGroup(account.GroupManager))
		require.ErrorIs(t, acc.AddToGroup(account.GroupManager), errs.ErrValueIsInvalid)
	})

	t.Run("removing a non-member reports false", func(t *testing.T) {
		acc, err := account.NewAccount(kernel.NewUUID(), "joe", false)
		require.NoError(t, err)

		assert.False(t, acc.RemoveFromGroup(account.GroupManager))
	})
}

func TestGroupFromString(t *testing.T) {
	t.Run("known groups", func(t *testing.T) {
		g, err := account.GroupFromString("manager")
		require.NoError(t, err)
		assert.Equal(t, account.GroupManager, g)

		g, err = account.GroupFromString("delivery_crew")
		require.NoError(t, err)
		assert.Equal(t, account.GroupDeliveryCrew, g)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := account.GroupFromString("chefs")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, account.RoleCustomer.Validate())
	require.NoError(t, account.RoleManager.Validate())
	require.NoError(t, account.RoleDeliveryCrew.Validate())
	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "customer", account.RoleCustomer.String())
	assert.Equal(t, "manager", account.RoleManager.String())
	assert.Equal(t, "delivery_crew", account.RoleDeliveryCrew.String())
	assert.Equal(t, "unknown", account.Role(42).String())
}

func TestNewActor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		actor, err := account.NewActor(id, account.RoleCustomer)
		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, account.RoleCustomer, actor.Role())
		require.NoError(t, actor.Validate())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var actor account.Actor
		require.Error(t, actor.Validate())
	})
}
