package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order states persisted locally.
const (
	OrderStatePending = "pending"
	OrderStateDone    = "done"
)

// Order mirrors a gateway order. Ammount is the in-game currency purchased,
// not the money charged.
type Order struct {
	OrderID        string          `json:"order_id" gorm:"primaryKey;type:varchar(64)"`
	EmailClient    string          `json:"email_client" gorm:"not null;index"`
	TimeClickToBuy time.Time       `json:"time_click_to_buy" gorm:"not null"`
	Ammount        decimal.Decimal `json:"ammount" gorm:"type:numeric"`
	State          string          `json:"state" gorm:"not null;default:pending"`
}

func (Order) TableName() string { return "orders" }
