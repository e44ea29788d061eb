package entity

import (
	"gorm.io/gorm"
)

// Price fields across the schema are int64 minor currency units.
type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Picture     string `json:"picture"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Options []Option `json:"options,omitempty"`
}

// Option is a choice group on a menu (e.g. size, spice level).
type Option struct {
	gorm.Model
	Name     string `json:"name"`
	Required bool   `gorm:"default:false" json:"required"`

	MenuID uint `gorm:"index" json:"menuId"`
	Menu   Menu `json:"-"`

	Values []OptionValue `json:"values,omitempty"`
}

type OptionValue struct {
	gorm.Model
	Name            string `json:"name"`
	PriceAdjustment int64  `gorm:"default:0" json:"priceAdjustment"`

	OptionID uint   `gorm:"index" json:"optionId"`
	Option   Option `json:"-"`
}
