package cartrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart line. The row lock in GetLineForUpdate only covers
// lines that already exist, so two first adds of the same pair can both reach
// the insert; the conflict clause folds the loser into a quantity increment
// on the winner's row instead of failing on the composite key. A retry after
// the key violation would not work here because the violation aborts the
// surrounding transaction.
func (r *GormCartRepository) Add(ctx context.Context, line *cart.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_lines.quantity + excluded.quantity"),
		}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(line.CustomerID(), line)
	return nil
}

// Update saves a merged cart line. The key and the captured unit price never
// change; only the quantity does.
func (r *GormCartRepository) Update(ctx context.Context, line *cart.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&LineDTO{}).
		Where("customer_id = ? AND menu_item_id = ?",
			line.CustomerID().Bytes(), line.MenuItemID().Bytes()).
		Update("quantity", line.Quantity())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(line.CustomerID(), line)
	return nil
}

// GetLineForUpdate retrieves the line for a (customer, menu item) pair with
// a FOR UPDATE row lock. The lock is held until the surrounding transaction
// ends, so two concurrent adds of the same item serialize and both
// increments survive.
func (r *GormCartRepository) GetLineForUpdate(
	ctx context.Context,
	customerID, menuItemID kernel.UUID,
) (*cart.Line, error) {
	if err := errors.Join(customerID.Validate(), menuItemID.Validate()); err != nil {
		return nil, err
	}

	var dto LineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "customer_id = ? AND menu_item_id = ?",
			customerID.Bytes(), menuItemID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart line", menuItemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves every line in the customer's cart.
func (r *GormCartRepository) GetAllByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*cart.Line, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// DeleteAllByCustomer clears the customer's cart. Deleting an already empty
// cart affects zero rows and succeeds.
func (r *GormCartRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&LineDTO{}, "customer_id = ?", customerID.Bytes()).Error
}

// DeleteOlderThan removes lines added before the cutoff and reports how many
// rows went away.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&LineDTO{}, "added_at < ?", cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
