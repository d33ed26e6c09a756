package accountrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account with its group memberships.
func (r *GormAccountRepository) Add(ctx context.Context, acc *account.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(acc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	r.tracker.TrackAggregate(acc.ID(), acc)
	return nil
}

// Update saves account changes. Group membership rows are replaced wholesale:
// a save of associations would only upsert and never remove a revoked group.
func (r *GormAccountRepository) Update(ctx context.Context, acc *account.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(acc)
	db := r.db.WithContext(ctx)

	result := db.Model(&AccountDTO{}).Where("id = ?", dto.ID).
		Select("username", "is_staff").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Delete(&GroupDTO{}, "account_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Groups) > 0 {
		if err := db.Create(&dto.Groups).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(acc.ID(), acc)
	return nil
}

// Get retrieves an account with its group memberships.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).Preload("Groups").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves an account by its unique username.
func (r *GormAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).Preload("Groups").First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInGroup retrieves every member of a group, sorted by username.
func (r *GormAccountRepository) GetAllInGroup(
	ctx context.Context,
	group account.GroupName,
) ([]*account.Account, error) {
	var dtos []AccountDTO
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Joins("JOIN account_groups ON account_groups.account_id = accounts.id AND account_groups.group_name = ?",
			string(group)).
		Order("accounts.username").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		acc, accErr := toDomain(dto)
		if accErr != nil {
			return nil, accErr
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}
