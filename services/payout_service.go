package services

import (
	"errors"
	"time"

	"plateful/entity"
	"plateful/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutService struct {
	DB        *gorm.DB
	Repo      *repository.PayoutRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
}

func NewPayoutService(db *gorm.DB, repo *repository.PayoutRepository, orderRepo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *PayoutService {
	return &PayoutService{DB: db, Repo: repo, OrderRepo: orderRepo, RestRepo: restRepo}
}

type GeneratePayoutIn struct {
	RestaurantID uint      `json:"restaurantId" binding:"required"`
	PeriodStart  time.Time `json:"periodStart" binding:"required"`
	PeriodEnd    time.Time `json:"periodEnd" binding:"required"`
}

// Generate settles a restaurant's delivered orders for a period. Repeating
// the call for the same restaurant and period is rejected rather than paying
// twice.
func (s *PayoutService) Generate(in *GeneratePayoutIn) (*entity.Payout, error) {
	if !in.PeriodEnd.After(in.PeriodStart) {
		return nil, errors.New("period end must be after start")
	}
	if _, err := s.RestRepo.GetByID(in.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.Repo.ExistsForPeriod(in.RestaurantID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	amount, err := s.OrderRepo.SumDeliveredForRestaurant(in.RestaurantID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	p := &entity.Payout{
		Reference:    uuid.NewString(),
		Amount:       amount,
		Status:       entity.PayoutPending,
		PeriodStart:  in.PeriodStart,
		PeriodEnd:    in.PeriodEnd,
		RestaurantID: in.RestaurantID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PayoutService) MarkPaid(id uint) error {
	affected, err := s.Repo.MarkPaid(id, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *PayoutService) ListForOwner(ownerID uint, limit int) ([]entity.Payout, error) {
	rest, err := s.RestRepo.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListForRestaurant(rest.ID, limit)
}

func (s *PayoutService) ListAll(status string, limit, offset int) ([]entity.Payout, error) {
	return s.Repo.ListAll(status, limit, offset)
}
