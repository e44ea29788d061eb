package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `gorm:"index" json:"phoneNumber"`
	Address     string `json:"address"`
	District    string `json:"district"`
	City        string `json:"city"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	RestaurantsOwned []Restaurant  `gorm:"foreignKey:OwnerID" json:"-"`
	Orders           []Order       `json:"-"`
	Reviews          []Review      `json:"-"`
	DriverProfile    *DriverProfile `gorm:"foreignKey:UserID" json:"-"`
	SupportTickets   []SupportTicket `json:"-"`
}
