package services

import (
	"errors"
	"strings"
	"time"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/gorm"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

// promoDiscount computes the discount a promotion grants against a given
// subtotal and delivery fee, in minor units. Free delivery is modelled as a
// discount equal to the fee so total = subtotal - discount + fee stays the
// single composition rule.
func promoDiscount(p *entity.Promotion, subtotal, deliveryFee int64) int64 {
	switch p.PromoType {
	case entity.PromoAmount:
		if p.Value > subtotal {
			return subtotal
		}
		return p.Value
	case entity.PromoPercent:
		return subtotal * p.Value / 100
	case entity.PromoFreeDelivery:
		return deliveryFee
	}
	return 0
}

// Resolve validates a promo code against the order being built and returns
// the promotion. ErrInvalidPromo covers unknown, inactive, out-of-window and
// below-minimum cases alike.
func (s *PromotionService) Resolve(code string, subtotal int64) (*entity.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrInvalidPromo
	}
	p, err := s.Repo.FindActiveByCode(code, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPromo
		}
		return nil, err
	}
	if subtotal < p.MinOrder {
		return nil, ErrInvalidPromo
	}
	return p, nil
}

type PromotionIn struct {
	Code      string     `json:"code" binding:"required"`
	Detail    string     `json:"detail"`
	PromoType string     `json:"promoType" binding:"required,oneof=amount percent free_delivery"`
	Value     int64      `json:"value" binding:"min=0"`
	MinOrder  int64      `json:"minOrder" binding:"min=0"`
	StartAt   *time.Time `json:"startAt"`
	EndAt     *time.Time `json:"endAt"`
}

func (s *PromotionService) Create(in *PromotionIn) (*entity.Promotion, error) {
	if in.PromoType == entity.PromoPercent && in.Value > 100 {
		return nil, errors.New("percent value out of range")
	}
	p := &entity.Promotion{
		Code:      strings.ToUpper(strings.TrimSpace(in.Code)),
		Detail:    in.Detail,
		PromoType: in.PromoType,
		Value:     in.Value,
		MinOrder:  in.MinOrder,
		StartAt:   in.StartAt,
		EndAt:     in.EndAt,
		IsActive:  true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionService) List(limit, offset int) ([]entity.Promotion, error) {
	return s.Repo.List(limit, offset)
}

func (s *PromotionService) SetActive(id uint, active bool) error {
	affected, err := s.Repo.Update(id, map[string]any{"is_active": active})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PromotionService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
