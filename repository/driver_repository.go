package repository

import (
	"errors"
	"time"

	"plateful/entity"

	"gorm.io/gorm"
)

type DriverRepository struct{ DB *gorm.DB }

func NewDriverRepository(db *gorm.DB) *DriverRepository { return &DriverRepository{DB: db} }

func (r *DriverRepository) GetByUserID(userID uint) (*entity.DriverProfile, error) {
	var p entity.DriverProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DriverRepository) Upsert(userID uint, plate, license string) (*entity.DriverProfile, error) {
	var p entity.DriverProfile
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = entity.DriverProfile{UserID: userID, VehiclePlate: plate, License: license}
		if err := r.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	p.VehiclePlate = plate
	p.License = license
	if err := r.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DriverRepository) SetAvailability(userID uint, available bool) (int64, error) {
	res := r.DB.Model(&entity.DriverProfile{}).
		Where("user_id = ?", userID).
		Update("is_available", available)
	return res.RowsAffected, res.Error
}

func (r *DriverRepository) UpdateLocation(userID uint, lat, lng float64, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.DriverProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"latitude":            lat,
			"longitude":           lng,
			"location_updated_at": at,
		})
	return res.RowsAffected, res.Error
}

// HasActiveDelivery reports whether the driver has an order that is neither
// delivered nor cancelled.
func (r *DriverRepository) HasActiveDelivery(driverUserID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("driver_id = ? AND status NOT IN ?", driverUserID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *DriverRepository) ListAvailable(limit int) ([]entity.DriverProfile, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.DriverProfile
	err := r.DB.Where("is_available = ?", true).Limit(limit).Find(&out).Error
	return out, err
}
