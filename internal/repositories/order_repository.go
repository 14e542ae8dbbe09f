package repositories

import (
	"context"
	"time"

	"astroleap/internal/models"
)

// Retention limits applied before each order insert.
const (
	MaxOpenOrdersPerEmail = 4
	OpenOrderRetention    = 48 * time.Hour
	DoneOrderRetention    = 14 * 24 * time.Hour
)

// OrderRepository defines the interface for the local order ledger.
type OrderRepository interface {
	// CreateWithRetention prunes the client's stale and excess orders, then inserts order.
	CreateWithRetention(ctx context.Context, order *models.Order, now time.Time) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	GetByEmail(ctx context.Context, email string) ([]models.Order, error)
	MarkDone(ctx context.Context, orderID string) error
	Delete(ctx context.Context, orderID string) error
}
