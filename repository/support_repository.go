package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type SupportRepository struct{ DB *gorm.DB }

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) Create(t *entity.SupportTicket) error {
	return r.DB.Create(t).Error
}

func (r *SupportRepository) ListForUser(userID uint, limit int) ([]entity.SupportTicket, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []entity.SupportTicket
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *SupportRepository) ListAll(status string, limit, offset int) ([]entity.SupportTicket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Order("id DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entity.SupportTicket
	err := q.Find(&out).Error
	return out, err
}

func (r *SupportRepository) Close(id uint, reply string) (int64, error) {
	res := r.DB.Model(&entity.SupportTicket{}).
		Where("id = ? AND status = ?", id, entity.TicketOpen).
		Updates(map[string]any{"status": entity.TicketClosed, "reply": reply})
	return res.RowsAffected, res.Error
}
