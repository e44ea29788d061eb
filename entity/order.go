package entity

import (
	"gorm.io/gorm"
)

// OrderStatus is the order lifecycle state. Forward transitions are linear;
// cancelled is reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusPickupPending  OrderStatus = "pickup_pending"
	StatusPickupAccepted OrderStatus = "pickup_accepted"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusDelivering     OrderStatus = "delivering"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	gorm.Model
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	Status OrderStatus `gorm:"index;not null;default:pending" json:"status"`

	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	PromoCode string `json:"promoCode,omitempty"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// DriverID is set by the claim transition and never reassigned.
	DriverID *uint `gorm:"index" json:"driverId,omitempty"`
	Driver   *User `gorm:"foreignKey:DriverID" json:"-"`

	OrderItems []OrderItem `json:"-"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	gorm.Model
	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Selections []OrderItemSelection `json:"selections,omitempty"`
}

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `gorm:"index" json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	OptionID      uint        `json:"optionId"`
	OptionValueID uint        `json:"optionValueId"`
	OptionValue   OptionValue `json:"-"`

	PriceDelta int64 `json:"priceDelta"`
}
