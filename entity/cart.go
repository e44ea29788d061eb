package entity

import (
	"gorm.io/gorm"
)

// Cart is one-per-user and locked to a single restaurant while non-empty.
// RestaurantID 0 means the cart is unlocked and ready for any restaurant.
type Cart struct {
	gorm.Model
	UserID       uint       `gorm:"uniqueIndex" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `gorm:"index" json:"menuId"`
	Menu   Menu `json:"-"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	Selections []CartItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}

type CartItemSelection struct {
	gorm.Model
	CartItemID uint     `gorm:"index" json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	OptionID      uint        `json:"optionId"`
	Option        Option      `json:"-"`
	OptionValueID uint        `json:"optionValueId"`
	OptionValue   OptionValue `json:"-"`

	PriceDelta int64 `json:"priceDelta"`
}
