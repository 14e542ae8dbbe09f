package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astroleap/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// CreateWithRetention applies the retention policy for order.EmailClient and
// inserts the order in the same transaction:
//   - open orders older than OpenOrderRetention are purged
//   - done orders older than DoneOrderRetention are purged
//   - the oldest open orders are evicted so at most MaxOpenOrdersPerEmail remain after the insert
func (r *GORMOrderRepository) CreateWithRetention(ctx context.Context, order *models.Order, now time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		email := order.EmailClient

		err := tx.Where("email_client = ? AND state <> ? AND time_click_to_buy < ?",
			email, models.OrderStateDone, now.Add(-OpenOrderRetention)).
			Delete(&models.Order{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("email_client = ? AND state = ? AND time_click_to_buy < ?",
			email, models.OrderStateDone, now.Add(-DoneOrderRetention)).
			Delete(&models.Order{}).Error
		if err != nil {
			return err
		}

		var open []string
		err = tx.Model(&models.Order{}).
			Where("email_client = ? AND state <> ?", email, models.OrderStateDone).
			Order("time_click_to_buy ASC").
			Pluck("order_id", &open).Error
		if err != nil {
			return err
		}
		if excess := len(open) - (MaxOpenOrdersPerEmail - 1); excess > 0 {
			if err := tx.Where("order_id IN ?", open[:excess]).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		if order.State == "" {
			order.State = models.OrderStatePending
		}
		order.TimeClickToBuy = now
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.OrderID, err)
	}
	return nil
}

// GetByID returns a local order.
func (r *GORMOrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetByEmail returns a client's orders, newest first.
func (r *GORMOrderRepository) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Where("email_client = ?", email).
		Order("time_click_to_buy DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for %s: %w", email, err)
	}
	return orders, nil
}

// MarkDone sets the order state to done.
func (r *GORMOrderRepository) MarkDone(ctx context.Context, orderID string) error {
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("state", models.OrderStateDone).Error
	if err != nil {
		return fmt.Errorf("failed to mark order %s done: %w", orderID, err)
	}
	return nil
}

// Delete removes an order from the ledger.
func (r *GORMOrderRepository) Delete(ctx context.Context, orderID string) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	return nil
}
