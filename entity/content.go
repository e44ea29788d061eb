package entity

import (
	"gorm.io/gorm"
)

// Banner is a marketing strip shown on the storefront.
type Banner struct {
	gorm.Model
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Position int    `gorm:"default:0" json:"position"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

const (
	PopupOnce   = "once"
	PopupAlways = "always"
)

type Popup struct {
	gorm.Model
	Title            string `json:"title"`
	Body             string `json:"body"`
	ImageURL         string `json:"imageUrl"`
	DisplayFrequency string `gorm:"default:always" json:"displayFrequency"`
	IsActive         bool   `gorm:"default:true" json:"isActive"`
}

// PopupView records that a device has seen a popup. The unique pair makes
// display_frequency=once stick per device.
type PopupView struct {
	gorm.Model
	PopupID     uint   `gorm:"uniqueIndex:idx_popup_device" json:"popupId"`
	Popup       Popup  `json:"-"`
	DeviceToken string `gorm:"size:64;uniqueIndex:idx_popup_device" json:"deviceToken"`
}

type BlogCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Articles []BlogArticle `gorm:"foreignKey:CategoryID" json:"-"`
}

type BlogArticle struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Body      string `json:"body"`
	Language  string `gorm:"default:en" json:"language"`
	Published bool   `gorm:"default:false" json:"published"`

	CategoryID uint         `gorm:"index" json:"categoryId"`
	Category   BlogCategory `json:"-"`
}
