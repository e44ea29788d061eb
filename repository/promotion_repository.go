package repository

import (
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type PromotionRepository struct{ DB *gorm.DB }

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

// FindActiveByCode returns an active promotion whose window contains now.
func (r *PromotionRepository) FindActiveByCode(code string, now time.Time) (*entity.Promotion, error) {
	var p entity.Promotion
	err := r.DB.Where("code = ? AND is_active = ?", code, true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Create(p *entity.Promotion) error {
	return r.DB.Create(p).Error
}

func (r *PromotionRepository) Update(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Promotion{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *PromotionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Promotion{}, id)
	return res.RowsAffected, res.Error
}

func (r *PromotionRepository) List(limit, offset int) ([]entity.Promotion, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Promotion
	err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
