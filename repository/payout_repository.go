package repository

import (
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type PayoutRepository struct{ DB *gorm.DB }

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{DB: db}
}

func (r *PayoutRepository) Create(tx *gorm.DB, p *entity.Payout) error {
	return tx.Create(p).Error
}

// ExistsForPeriod keeps payout generation idempotent per restaurant+period.
func (r *PayoutRepository) ExistsForPeriod(restID uint, start, end time.Time) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Payout{}).
		Where("restaurant_id = ? AND period_start = ? AND period_end = ?", restID, start, end).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *PayoutRepository) ListForRestaurant(restID uint, limit int) ([]entity.Payout, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []entity.Payout
	err := r.DB.Where("restaurant_id = ?", restID).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *PayoutRepository) ListAll(status string, limit, offset int) ([]entity.Payout, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Order("id DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entity.Payout
	err := q.Find(&out).Error
	return out, err
}

func (r *PayoutRepository) MarkPaid(id uint, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.Payout{}).
		Where("id = ? AND status = ?", id, entity.PayoutPending).
		Updates(map[string]any{"status": entity.PayoutPaid, "paid_at": at})
	return res.RowsAffected, res.Error
}
