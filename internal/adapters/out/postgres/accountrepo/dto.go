// Package accountrepo provides data transfer objects and mapping functions
// for account persistence, including the group membership rows that role
// resolution reads.
package accountrepo

import (
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsStaff  bool       `gorm:"not null"`
	Groups   []GroupDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// GroupDTO represents one group membership row. The composite primary key
// makes membership a set.
type GroupDTO struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupName string    `gorm:"type:varchar(64);primaryKey"`
}

// TableName specifies the database table name for group membership entities.
func (GroupDTO) TableName() string {
	return "account_groups"
}

func fromDomain(acc *account.Account) AccountDTO {
	accountID := acc.ID().Bytes()

	domainGroups := acc.Groups()
	groups := make([]GroupDTO, 0, len(domainGroups))
	for _, group := range domainGroups {
		groups = append(groups, GroupDTO{
			AccountID: accountID,
			GroupName: string(group),
		})
	}

	return AccountDTO{
		ID:       accountID,
		Username: acc.Username(),
		IsStaff:  acc.IsStaff(),
		Groups:   groups,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groups := make([]account.GroupName, 0, len(dto.Groups))
	for _, groupDto := range dto.Groups {
		group, groupErr := account.GroupFromString(groupDto.GroupName)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, group)
	}

	return account.RestoreAccount(id, dto.Username, dto.IsStaff, groups)
}
