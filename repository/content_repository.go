package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

// ContentRepository backs the marketing surfaces: banners, popups and blog.
type ContentRepository struct{ DB *gorm.DB }

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// ---------------- Banners ----------------

func (r *ContentRepository) ListActiveBanners() ([]entity.Banner, error) {
	var out []entity.Banner
	err := r.DB.Where("is_active = ?", true).Order("position, id").Find(&out).Error
	return out, err
}

func (r *ContentRepository) CreateBanner(b *entity.Banner) error {
	return r.DB.Create(b).Error
}

func (r *ContentRepository) UpdateBanner(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Banner{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ContentRepository) DeleteBanner(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Banner{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Popups ----------------

// ListPopupsForDevice returns active popups, excluding frequency=once ones the
// device has already seen.
func (r *ContentRepository) ListPopupsForDevice(deviceToken string) ([]entity.Popup, error) {
	var out []entity.Popup
	err := r.DB.Where("is_active = ?", true).
		Where(`display_frequency <> ? OR NOT EXISTS (
			SELECT 1 FROM popup_views v
			 WHERE v.popup_id = popups.id AND v.device_token = ? AND v.deleted_at IS NULL)`,
			entity.PopupOnce, deviceToken).
		Order("id").Find(&out).Error
	return out, err
}

func (r *ContentRepository) CreatePopup(p *entity.Popup) error {
	return r.DB.Create(p).Error
}

func (r *ContentRepository) MarkPopupViewed(popupID uint, deviceToken string) error {
	return r.DB.Where(entity.PopupView{PopupID: popupID, DeviceToken: deviceToken}).
		FirstOrCreate(&entity.PopupView{PopupID: popupID, DeviceToken: deviceToken}).Error
}

// ---------------- Blog ----------------

func (r *ContentRepository) CreateCategory(c *entity.BlogCategory) error {
	return r.DB.Create(c).Error
}

func (r *ContentRepository) ListCategories() ([]entity.BlogCategory, error) {
	var out []entity.BlogCategory
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *ContentRepository) CreateArticle(a *entity.BlogArticle) error {
	return r.DB.Create(a).Error
}

func (r *ContentRepository) UpdateArticle(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.BlogArticle{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ContentRepository) GetArticleBySlug(slug string) (*entity.BlogArticle, error) {
	var a entity.BlogArticle
	if err := r.DB.Where("slug = ? AND published = ?", slug, true).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ContentRepository) ListPublishedArticles(categoryID uint, limit, offset int) ([]entity.BlogArticle, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.Where("published = ?", true)
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var out []entity.BlogArticle
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
