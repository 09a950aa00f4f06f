package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	clk     clock.Clock
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// The clock is used to rehydrate aggregates, which stamp their own lifecycle
// timestamps.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, clk clock.Clock) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		clk:     clk,
	}
}

// Add saves a new order to the database along with its line items and
// payment references.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items and payment
// references are replaced wholesale since the aggregate owns them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Items", "Payments").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderPaymentDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Payments) > 0 {
		if err := db.Create(&dto.Payments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its line items and payment references.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.clk)
}

// GetDraftByAccountAndRestaurant retrieves the open draft order an account
// holds at a restaurant. Each account has at most one draft per restaurant.
func (r *GormOrderRepository) GetDraftByAccountAndRestaurant(
	ctx context.Context,
	accountID kernel.UUID,
	restaurantID kernel.UUID,
) (*order.Order, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto,
			"account_id = ? AND restaurant_id = ? AND status = ?",
			accountID.Bytes(), restaurantID.Bytes(), order.Draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft order",
				fmt.Sprintf("account %s at restaurant %s", accountID, restaurantID))
		}
		return nil, err
	}

	return toDomain(dto, r.clk)
}
