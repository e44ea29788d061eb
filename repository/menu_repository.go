package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetBasics reads just the fields pricing needs (id, price, restaurant_id,
// availability).
func (r *MenuRepository) GetBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, price, restaurant_id, is_available").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) ListForRestaurant(restID uint) ([]entity.Menu, error) {
	var out []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("Options").Preload("Options.Values").
		Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(restID, menuID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Menu{}).
		Where("id = ? AND restaurant_id = ?", menuID, restID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(restID, menuID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", menuID, restID).
		Delete(&entity.Menu{})
	return res.RowsAffected, res.Error
}

// CountOptionValuesBelongToMenu verifies every id in valIDs hangs off an
// option of the given menu.
func (r *MenuRepository) CountOptionValuesBelongToMenu(menuID uint, valIDs []uint) (int64, error) {
	if len(valIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.OptionValue{}).
		Joins("JOIN options ON options.id = option_values.option_id").
		Where("option_values.id IN ? AND options.menu_id = ?", valIDs, menuID).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) GetOptionValuesByIDs(ids []uint) ([]entity.OptionValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vals []entity.OptionValue
	err := r.DB.Where("id IN ?", ids).Find(&vals).Error
	return vals, err
}
