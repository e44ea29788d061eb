package repository

import (
	"plateful/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) CountForUserOrder(tx *gorm.DB, userID, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

// RefreshRestaurantRating recomputes the aggregate from review rows and
// writes it onto the restaurant inside the caller's transaction, so two
// concurrent submissions cannot publish a stale average.
func (r *ReviewRepository) RefreshRestaurantRating(tx *gorm.DB, restID uint) error {
	return tx.Exec(`
		UPDATE restaurants SET
			rating = COALESCE((SELECT AVG(rating) FROM reviews
				WHERE restaurant_id = ? AND deleted_at IS NULL), 0),
			reviews_count = (SELECT COUNT(*) FROM reviews
				WHERE restaurant_id = ? AND deleted_at IS NULL)
		WHERE id = ?
	`, restID, restID, restID).Error
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

// ---------------- Driver reviews ----------------

func (r *ReviewRepository) CountDriverForUserOrder(tx *gorm.DB, userID, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.DriverReview{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReviewRepository) CreateDriver(tx *gorm.DB, rev *entity.DriverReview) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) RefreshDriverRating(tx *gorm.DB, driverUserID uint) error {
	return tx.Exec(`
		UPDATE driver_profiles SET
			rating = COALESCE((SELECT AVG(rating) FROM driver_reviews
				WHERE driver_id = ? AND deleted_at IS NULL), 0),
			reviews_count = (SELECT COUNT(*) FROM driver_reviews
				WHERE driver_id = ? AND deleted_at IS NULL)
		WHERE user_id = ?
	`, driverUserID, driverUserID, driverUserID).Error
}

func (r *ReviewRepository) ListForDriver(driverUserID uint, limit, offset int) ([]entity.DriverReview, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.DriverReview
	err := r.DB.Where("driver_id = ?", driverUserID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
