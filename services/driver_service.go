package services

import (
	"errors"
	"time"

	"plateful/entity"
	"plateful/repository"
	"plateful/utils"

	"gorm.io/gorm"
)

type DriverService struct {
	DB        *gorm.DB
	Repo      *repository.DriverRepository
	OrderRepo *repository.OrderRepository
	Notify    Notifier
}

func NewDriverService(db *gorm.DB, repo *repository.DriverRepository, orderRepo *repository.OrderRepository, notify Notifier) *DriverService {
	return &DriverService{DB: db, Repo: repo, OrderRepo: orderRepo, Notify: notify}
}

type DriverProfileIn struct {
	VehiclePlate string `json:"vehiclePlate" binding:"required"`
	License      string `json:"license" binding:"required"`
}

func (s *DriverService) GetProfile(userID uint) (*entity.DriverProfile, error) {
	p, err := s.Repo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *DriverService) UpsertProfile(userID uint, in *DriverProfileIn) (*entity.DriverProfile, error) {
	return s.Repo.Upsert(userID, in.VehiclePlate, in.License)
}

// SetAvailability toggles the driver on or off shift. Going off shift is
// blocked while a delivery is in flight, and drops the stored position so the
// next shift always starts with a fresh write.
func (s *DriverService) SetAvailability(userID uint, available bool) error {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !available {
		busy, err := s.Repo.HasActiveDelivery(userID)
		if err != nil {
			return err
		}
		if busy {
			return errors.New("cannot go unavailable with an active delivery")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"is_available": available}
		if !available {
			updates["location_updated_at"] = nil
		}
		return tx.Model(&entity.DriverProfile{}).
			Where("id = ?", p.ID).Updates(updates).Error
	})
}

type LocationIn struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// ReportLocation persists a position reading unless it is within the epsilon
// of the last stored one. The bool result tells the caller whether a write
// happened; a skipped reading is still a successful report.
func (s *DriverService) ReportLocation(userID uint, in *LocationIn) (bool, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if !p.IsAvailable {
		return false, ErrForbidden
	}

	// LocationUpdatedAt == nil means no cached position: always write.
	if p.LocationUpdatedAt != nil &&
		utils.WithinEpsilon(p.Latitude, p.Longitude, in.Latitude, in.Longitude) {
		return false, nil
	}

	affected, err := s.Repo.UpdateLocation(userID, in.Latitude, in.Longitude, time.Now())
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, ErrNotFound
	}
	if s.Notify != nil {
		s.Notify.DriverMoved(userID, in.Latitude, in.Longitude)
	}
	return true, nil
}

type JobOut struct {
	OrderID        uint    `json:"orderId"`
	RestaurantID   uint    `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Address        string  `json:"address"`
	Total          int64   `json:"total"`
	DistanceKm     float64 `json:"distanceKm,omitempty"`
}

// ListOpenJobs is the job board: ready-for-pickup orders no driver has
// claimed, with the pickup distance when the driver has a known position.
func (s *DriverService) ListOpenJobs(userID uint) ([]JobOut, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.IsAvailable {
		return nil, ErrForbidden
	}

	orders, err := s.OrderRepo.ListPickupPending(50)
	if err != nil {
		return nil, err
	}
	out := make([]JobOut, 0, len(orders))
	for _, o := range orders {
		job := JobOut{
			OrderID:        o.ID,
			RestaurantID:   o.RestaurantID,
			RestaurantName: o.Restaurant.Name,
			Address:        o.Address,
			Total:          o.Total,
		}
		if p.LocationUpdatedAt != nil && (o.Restaurant.Latitude != 0 || o.Restaurant.Longitude != 0) {
			job.DistanceKm = utils.HaversineKm(p.Latitude, p.Longitude,
				o.Restaurant.Latitude, o.Restaurant.Longitude)
		}
		out = append(out, job)
	}
	return out, nil
}
