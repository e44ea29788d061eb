package entity

import (
	"gorm.io/gorm"
)

// Review is a customer's rating of a restaurant, at most one per order.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	UserID       uint       `gorm:"uniqueIndex:idx_review_user_order" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	OrderID      uint       `gorm:"uniqueIndex:idx_review_user_order" json:"orderId"`
	Order        Order      `json:"-"`
}

// DriverReview is the same shape against the delivering driver.
type DriverReview struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	UserID   uint  `gorm:"uniqueIndex:idx_driver_review_user_order" json:"userId"`
	User     User  `json:"-"`
	DriverID uint  `gorm:"index" json:"driverId"`
	Driver   User  `gorm:"foreignKey:DriverID" json:"-"`
	OrderID  uint  `gorm:"uniqueIndex:idx_driver_review_user_order" json:"orderId"`
	Order    Order `json:"-"`
}
