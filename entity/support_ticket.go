package entity

import (
	"gorm.io/gorm"
)

const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

type SupportTicket struct {
	gorm.Model
	Subject string `gorm:"not null" json:"subject"`
	Body    string `json:"body"`
	Status  string `gorm:"default:open" json:"status"`

	UserID  uint   `gorm:"index" json:"userId"`
	User    User   `json:"-"`
	OrderID *uint  `json:"orderId,omitempty"`
	Reply   string `json:"reply"`
}
