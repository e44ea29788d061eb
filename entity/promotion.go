package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PromoAmount       = "amount"
	PromoPercent      = "percent"
	PromoFreeDelivery = "free_delivery"
)

type Promotion struct {
	gorm.Model
	Code      string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Detail    string     `json:"detail"`
	PromoType string     `gorm:"not null" json:"promoType"`
	Value     int64      `json:"value"` // minor units for amount, 0-100 for percent
	MinOrder  int64      `json:"minOrder"`
	StartAt   *time.Time `json:"startAt,omitempty"`
	EndAt     *time.Time `json:"endAt,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
}
