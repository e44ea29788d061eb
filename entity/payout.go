package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PayoutPending = "pending"
	PayoutPaid    = "paid"
)

// Payout is a restaurant's settlement for delivered orders over a period.
// Amount excludes delivery fees, which stay with the platform.
type Payout struct {
	gorm.Model
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`
	Amount    int64  `json:"amount"`
	Status    string `gorm:"default:pending" json:"status"`

	PeriodStart time.Time  `json:"periodStart"`
	PeriodEnd   time.Time  `json:"periodEnd"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
