package services

import (
	"errors"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	MenuID       uint `json:"menuId" binding:"required"`
	Qty          int  `json:"qty" binding:"min=1"`
	Selections   []struct {
		OptionValueID uint `json:"optionValueId" binding:"required"`
	} `json:"selections"`
}

type CartOut struct {
	Cart     *entity.Cart `json:"cart"`
	Subtotal int64        `json:"subtotal"`
	Count    int          `json:"count"`
}

func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	out := &CartOut{Cart: c}
	for _, it := range c.Items {
		out.Subtotal += it.Total
		out.Count += it.Qty
	}
	return out, nil
}

// Add puts a menu line in the cart. A line without option selections merges
// into an existing optionless line for the same menu by summing quantity;
// a line with selections is always inserted as a new row.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, in.RestaurantID)
	if err != nil {
		return err
	}

	// carts hold a single restaurant at a time
	if c.RestaurantID != 0 && c.RestaurantID != in.RestaurantID {
		return ErrCartRestaurant
	}
	if c.RestaurantID == 0 {
		if err := s.CartRepo.SetRestaurant(c.ID, in.RestaurantID); err != nil {
			return err
		}
	}

	m, err := s.MenuRepo.GetBasics(in.MenuID)
	if err != nil {
		return err
	}
	if m.RestaurantID != in.RestaurantID {
		return errors.New("menu not in this restaurant")
	}
	if !m.IsAvailable {
		return errors.New("menu not available")
	}

	valIDs := make([]uint, 0, len(in.Selections))
	for _, sel := range in.Selections {
		valIDs = append(valIDs, sel.OptionValueID)
	}
	if len(valIDs) > 0 {
		cnt, err := s.MenuRepo.CountOptionValuesBelongToMenu(m.ID, valIDs)
		if err != nil {
			return err
		}
		if cnt != int64(len(valIDs)) {
			return errors.New("invalid option values")
		}
	}
	vals, err := s.MenuRepo.GetOptionValuesByIDs(valIDs)
	if err != nil {
		return err
	}

	unit := m.Price
	selRows := make([]entity.CartItemSelection, 0, len(vals))
	for _, v := range vals {
		unit += v.PriceAdjustment
		selRows = append(selRows, entity.CartItemSelection{
			OptionID: v.OptionID, OptionValueID: v.ID, PriceDelta: v.PriceAdjustment,
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if len(selRows) == 0 {
			exist, err := s.CartRepo.FindOptionlessItem(tx, c.ID, m.ID)
			if err != nil {
				return err
			}
			if exist != nil {
				return s.CartRepo.AddQty(tx, exist, in.Qty)
			}
		}
		line := &entity.CartItem{
			MenuID:     m.ID,
			Qty:        in.Qty,
			UnitPrice:  unit,
			Total:      unit * int64(in.Qty),
			Selections: selRows,
		}
		return s.CartRepo.InsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
