package services

import (
	"errors"
	"strings"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type ReviewIn struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// SubmitRestaurant records a rating for the restaurant that fulfilled a
// delivered order. One review per (user, order); the rating aggregate is
// recomputed in the same transaction as the insert.
func (s *ReviewService) SubmitRestaurant(userID uint, in *ReviewIn) (*entity.Review, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.StatusDelivered {
		return nil, errors.New("order not delivered yet")
	}

	rev := &entity.Review{
		UserID:       userID,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cnt, err := s.Repo.CountForUserOrder(tx, userID, o.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrAlreadyReviewed
		}
		if err := s.Repo.Create(tx, rev); err != nil {
			if isDuplicateErr(err) {
				return ErrAlreadyReviewed
			}
			return err
		}
		return s.Repo.RefreshRestaurantRating(tx, o.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// SubmitDriver is the same flow against the order's driver.
func (s *ReviewService) SubmitDriver(userID uint, in *ReviewIn) (*entity.DriverReview, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.StatusDelivered {
		return nil, errors.New("order not delivered yet")
	}
	if o.DriverID == nil {
		return nil, errors.New("order has no driver")
	}

	rev := &entity.DriverReview{
		UserID:   userID,
		DriverID: *o.DriverID,
		OrderID:  o.ID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cnt, err := s.Repo.CountDriverForUserOrder(tx, userID, o.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrAlreadyReviewed
		}
		if err := s.Repo.CreateDriver(tx, rev); err != nil {
			if isDuplicateErr(err) {
				return ErrAlreadyReviewed
			}
			return err
		}
		return s.Repo.RefreshDriverRating(tx, *o.DriverID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForRestaurant(restID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID, limit, offset)
}

func (s *ReviewService) ListForDriver(driverUserID uint, limit, offset int) ([]entity.DriverReview, error) {
	return s.Repo.ListForDriver(driverUserID, limit, offset)
}
