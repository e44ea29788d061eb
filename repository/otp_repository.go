package repository

import (
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type OTPRepository struct{ DB *gorm.DB }

func NewOTPRepository(db *gorm.DB) *OTPRepository { return &OTPRepository{DB: db} }

func (r *OTPRepository) Create(c *entity.OTPCode) error {
	return r.DB.Create(c).Error
}

// FindPending returns the newest unconsumed, unexpired challenge for a phone.
func (r *OTPRepository) FindPending(phone string, now time.Time) (*entity.OTPCode, error) {
	var c entity.OTPCode
	err := r.DB.Where("phone = ? AND consumed = ? AND expires_at > ?", phone, false, now).
		Order("id DESC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *OTPRepository) Consume(id uint) (int64, error) {
	res := r.DB.Model(&entity.OTPCode{}).
		Where("id = ? AND consumed = ?", id, false).
		Update("consumed", true)
	return res.RowsAffected, res.Error
}

func (r *OTPRepository) BumpAttempts(id uint) error {
	return r.DB.Model(&entity.OTPCode{}).Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
}
