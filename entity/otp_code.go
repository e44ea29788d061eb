package entity

import (
	"time"

	"gorm.io/gorm"
)

// OTPCode is a pending phone-verification challenge. CodeHash is a bcrypt
// hash of the 6-digit code; the plain code only ever goes to the SMS sender.
type OTPCode struct {
	gorm.Model
	RequestID string `gorm:"size:36;uniqueIndex" json:"requestId"`
	Phone     string `gorm:"index;not null" json:"phone"`
	Action    string `json:"action"` // login | register
	CodeHash  string `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Consumed  bool      `gorm:"default:false" json:"consumed"`
	Attempts  int       `gorm:"default:0" json:"-"`
}
