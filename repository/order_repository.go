package repository

import (
	"strings"
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	RestaurantID uint               `json:"restaurantId"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type OwnerOrderSummary struct {
	ID           uint               `json:"id"`
	UserID       uint               `json:"userId"`
	CustomerName string             `json:"customerName"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	qc := r.DB.Table("orders AS o").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil && *status != "" {
		qc = qc.Where("o.status = ?", *status)
	}
	if err := qc.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID        uint
		UserID    uint
		Total     int64
		Status    entity.OrderStatus
		CreatedAt time.Time
		FirstName string
		LastName  string
	}
	q := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total, o.status, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil && *status != "" {
		q = q.Where("o.status = ?", *status)
	}
	if err := q.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OwnerOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OwnerOrderSummary{
			ID:           row.ID,
			UserID:       row.UserID,
			CustomerName: strings.TrimSpace(row.FirstName + " " + row.LastName),
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

// ListPickupPending is the driver job board: orders ready for pickup with no
// driver attached yet.
func (r *OrderRepository) ListPickupPending(limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("status = ? AND driver_id IS NULL", entity.StatusPickupPending).
		Preload("Restaurant").
		Order("id").Limit(limit).Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForDriver(driverID uint, activeOnly bool, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Where("driver_id = ?", driverID)
	if activeOnly {
		q = q.Where("status NOT IN ?", []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled})
	}
	var out []entity.Order
	err := q.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// ---------------- Status transitions ----------------

// UpdateStatusGuard flips status only when the current value matches from.
// The row count tells the caller whether the transition actually happened.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ClaimForDriver atomically assigns a driver to an unclaimed pickup_pending
// order. At most one concurrent caller can win.
func (r *OrderRepository) ClaimForDriver(tx *gorm.DB, orderID, driverID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", orderID, entity.StatusPickupPending).
		Updates(map[string]any{"status": entity.StatusPickupAccepted, "driver_id": driverID})
	return res.RowsAffected, res.Error
}

// CancelGuard cancels unless the order already reached a terminal state.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", entity.StatusCancelled)
	return res.RowsAffected, res.Error
}

// CancelGuardFrom cancels only when the current status is one of allowed, so
// the precondition is checked in the same statement as the write.
func (r *OrderRepository) CancelGuardFrom(tx *gorm.DB, orderID uint, allowed []entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, allowed).
		Update("status", entity.StatusCancelled)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Selections").
		Find(&items).Error
	return items, err
}

// StatusCount is one row of the owner dashboard breakdown.
type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

func (r *OrderRepository) CountByStatusForRestaurant(restID uint) ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("restaurant_id = ?", restID).
		Group("status").
		Scan(&out).Error
	return out, err
}

// ---------------- Settlement ----------------

// SumDeliveredForRestaurant totals delivered orders in [start, end) excluding
// delivery fees, which stay with the platform.
func (r *OrderRepository) SumDeliveredForRestaurant(restID uint, start, end time.Time) (int64, error) {
	var row struct{ Sum int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total - delivery_fee), 0) AS sum").
		Where("restaurant_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			restID, entity.StatusDelivered, start, end).
		Scan(&row).Error
	return row.Sum, err
}
