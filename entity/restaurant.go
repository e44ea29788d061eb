package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	CuisineType string `gorm:"index" json:"cuisineType"`
	Address     string `json:"address"`
	District    string `json:"district"`
	City        string `gorm:"index" json:"city"`
	Description string `json:"description"`
	Picture     string `json:"picture"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// IsActive is the owner's open/pause switch; IsValidated is flipped by an
	// admin and gates the owner dashboard.
	IsActive    bool `gorm:"default:true" json:"isActive"`
	IsValidated bool `gorm:"default:false" json:"isValidated"`

	DeliveryTimeMin int   `gorm:"default:30" json:"deliveryTimeMin"`
	DeliveryFee     int64 `gorm:"default:0" json:"deliveryFee"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	ReviewsCount int64   `gorm:"default:0" json:"reviewsCount"`

	OwnerID uint `gorm:"index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Menus   []Menu   `json:"-"`
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
	Payouts []Payout `json:"-"`
}
