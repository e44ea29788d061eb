package services

import (
	"errors"
	"time"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB        *gorm.DB
	Repo      *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository
	Notify    Notifier
}

func NewRestaurantService(
	db *gorm.DB,
	repo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
	orderRepo *repository.OrderRepository,
	notify Notifier,
) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, MenuRepo: menuRepo, OrderRepo: orderRepo, Notify: notify}
}

// ----- Public -----

func (s *RestaurantService) ListPublic(f repository.RestaurantFilter) ([]entity.Restaurant, int64, error) {
	return s.Repo.ListPublic(f)
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.GetWithMenus(id)
	if err != nil {
		return nil, err
	}
	if !rest.IsValidated {
		return nil, ErrNotFound
	}
	return rest, nil
}

// ----- Owner -----

type RestaurantIn struct {
	Name            string `json:"name" binding:"required"`
	CuisineType     string `json:"cuisineType"`
	Address         string `json:"address"`
	District        string `json:"district"`
	City            string `json:"city"`
	Description     string `json:"description"`
	DeliveryTimeMin int    `json:"deliveryTimeMin" binding:"omitempty,min=5"`
	DeliveryFee     int64  `json:"deliveryFee" binding:"min=0"`
}

// CreateForOwner registers a restaurant awaiting admin validation. One per
// owner.
func (s *RestaurantService) CreateForOwner(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	if _, err := s.Repo.GetByOwner(ownerID); err == nil {
		return nil, errors.New("owner already has a restaurant")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rest := &entity.Restaurant{
		Name:            in.Name,
		CuisineType:     in.CuisineType,
		Address:         in.Address,
		District:        in.District,
		City:            in.City,
		Description:     in.Description,
		DeliveryTimeMin: in.DeliveryTimeMin,
		DeliveryFee:     in.DeliveryFee,
		OwnerID:         ownerID,
		IsActive:        true,
		IsValidated:     false,
	}
	if rest.DeliveryTimeMin == 0 {
		rest.DeliveryTimeMin = 30
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// OwnedRestaurant resolves the caller's restaurant; the owner dashboard is
// gated on validation.
func (s *RestaurantService) OwnedRestaurant(ownerID uint, requireValidated bool) (*entity.Restaurant, error) {
	rest, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if requireValidated && !rest.IsValidated {
		return nil, ErrForbidden
	}
	return rest, nil
}

func (s *RestaurantService) SetActive(ownerID uint, active bool) error {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return err
	}
	return s.Repo.SetActive(rest.ID, active)
}

func (s *RestaurantService) UpdateForOwner(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.OwnedRestaurant(ownerID, false)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name": in.Name, "cuisine_type": in.CuisineType,
		"address": in.Address, "district": in.District, "city": in.City,
		"description": in.Description, "delivery_fee": in.DeliveryFee,
	}
	if in.DeliveryTimeMin > 0 {
		updates["delivery_time_min"] = in.DeliveryTimeMin
	}
	if err := s.Repo.Update(rest.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(rest.ID)
}

// ----- Owner menus -----

type MenuIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Picture     string `json:"picture"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (s *RestaurantService) ListMenus(ownerID uint) ([]entity.Menu, error) {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return nil, err
	}
	return s.MenuRepo.ListForRestaurant(rest.ID)
}

func (s *RestaurantService) CreateMenu(ownerID uint, in *MenuIn) (*entity.Menu, error) {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return nil, err
	}
	m := &entity.Menu{
		RestaurantID: rest.ID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Picture:      in.Picture,
		IsAvailable:  true,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *RestaurantService) UpdateMenu(ownerID, menuID uint, in *MenuIn) error {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return err
	}
	updates := map[string]any{
		"name": in.Name, "description": in.Description,
		"price": in.Price, "picture": in.Picture,
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	affected, err := s.MenuRepo.Update(rest.ID, menuID, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RestaurantService) DeleteMenu(ownerID, menuID uint) error {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return err
	}
	affected, err := s.MenuRepo.Delete(rest.ID, menuID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardOut is the owner landing page: order counts by status and
// all-time delivered revenue net of delivery fees.
type DashboardOut struct {
	Restaurant   *entity.Restaurant       `json:"restaurant"`
	OrderCounts  []repository.StatusCount `json:"orderCounts"`
	RevenueTotal int64                    `json:"revenueTotal"`
}

func (s *RestaurantService) Dashboard(ownerID uint) (*DashboardOut, error) {
	rest, err := s.OwnedRestaurant(ownerID, true)
	if err != nil {
		return nil, err
	}
	counts, err := s.OrderRepo.CountByStatusForRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.OrderRepo.SumDeliveredForRestaurant(rest.ID, rest.CreatedAt, time.Now())
	if err != nil {
		return nil, err
	}
	return &DashboardOut{Restaurant: rest, OrderCounts: counts, RevenueTotal: revenue}, nil
}

// ----- Admin -----

func (s *RestaurantService) ListAll(limit, offset int) ([]entity.Restaurant, int64, error) {
	return s.Repo.ListAll(limit, offset)
}

// SetValidated flips the admin validation gate and pushes the change to any
// dashboard subscribed on the realtime hub.
func (s *RestaurantService) SetValidated(restID uint, validated bool) error {
	if _, err := s.Repo.GetByID(restID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.Repo.SetValidated(restID, validated); err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.RestaurantValidated(restID, validated)
	}
	return nil
}
