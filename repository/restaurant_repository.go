package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

type RestaurantFilter struct {
	City        string
	CuisineType string
	Limit       int
	Offset      int
}

// ListPublic returns restaurants visible to customers: validated by an admin
// and currently open.
func (r *RestaurantRepository) ListPublic(f RestaurantFilter) ([]entity.Restaurant, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := r.DB.Model(&entity.Restaurant{}).
		Where("is_validated = ? AND is_active = ?", true, true)
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.CuisineType != "" {
		q = q.Where("cuisine_type = ?", f.CuisineType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("rating DESC, id").Limit(f.Limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetWithMenus(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Menus", "is_available = ?", true).
		Preload("Menus.Options").
		Preload("Menus.Options.Values").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) SetActive(restID uint, active bool) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Update("is_active", active).Error
}

func (r *RestaurantRepository) SetValidated(restID uint, validated bool) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Update("is_validated", validated).Error
}

// ListAll is the admin view, no visibility filter.
func (r *RestaurantRepository) ListAll(limit, offset int) ([]entity.Restaurant, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Restaurant
	err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}
