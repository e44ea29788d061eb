package repository

import (
	"errors"

	"plateful/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty unsaved one so
// callers can render an empty cart without a special case.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Menu").
		Preload("Items.Selections").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, RestaurantID: restaurantID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) SetRestaurant(cartID, restaurantID uint) error {
	return r.DB.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("restaurant_id", restaurantID).Error
}

// FindOptionlessItem returns an existing line for the same menu that carries
// no option selections. Lines with selections never merge.
func (r *CartRepository) FindOptionlessItem(tx *gorm.DB, cartID, menuID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where(`cart_id = ? AND menu_id = ?
		AND NOT EXISTS (SELECT 1 FROM cart_item_selections s
			WHERE s.cart_item_id = cart_items.id AND s.deleted_at IS NULL)`,
		cartID, menuID).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) InsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) AddQty(tx *gorm.DB, item *entity.CartItem, qty int) error {
	item.Qty += qty
	item.Total = int64(item.Qty) * item.UnitPrice
	return tx.Save(item).Error
}

// UpdateQty sets the quantity of a line owned by the user. qty <= 0 is a
// removal, never a zero-quantity row.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	if err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// empty cart unlocks its restaurant
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci
			WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Update("restaurant_id", 0).Error
}
