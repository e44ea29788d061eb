package entity

import (
	"time"

	"gorm.io/gorm"
)

// DriverProfile carries everything the delivery side needs about a user:
// vehicle paperwork, availability and the last reported position.
type DriverProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	VehiclePlate string `json:"vehiclePlate"`
	License      string `json:"license"`

	IsAvailable bool `gorm:"default:false" json:"isAvailable"`

	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	LocationUpdatedAt *time.Time `json:"locationUpdatedAt,omitempty"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	ReviewsCount int64   `gorm:"default:0" json:"reviewsCount"`
}
