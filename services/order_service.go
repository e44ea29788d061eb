package services

import (
	"errors"

	"plateful/entity"
	"plateful/repository"

	"gorm.io/gorm"
)

// Notifier receives order lifecycle events for realtime fan-out. The ws
// tracking hub implements it; tests pass nil-safe no-op wiring.
type Notifier interface {
	OrderStatusChanged(orderID uint, status entity.OrderStatus, driverID *uint)
	RestaurantValidated(restaurantID uint, validated bool)
	DriverMoved(driverUserID uint, lat, lng float64)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	RestRepo  *repository.RestaurantRepository
	PromoSvc  *PromotionService
	Notify    Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	promoSvc *PromotionService,
	notify Notifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo,
		PromoSvc: promoSvc, Notify: notify,
	}
}

type CheckoutReq struct {
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Notes     string `json:"notes"`
	PromoCode string `json:"promoCode"`
}

type CheckoutRes struct {
	ID       uint  `json:"id"`
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Fee      int64 `json:"deliveryFee"`
	Total    int64 `json:"total"`
}

// CreateFromCart turns the user's cart into a pending order. The order row,
// its item snapshots and the cart clear all commit in one transaction, so a
// failure partway leaves no orphaned order behind.
func (s *OrderService) CreateFromCart(userID uint, in *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if cart.RestaurantID == 0 || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	rest, err := s.RestRepo.GetByID(cart.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !rest.IsValidated || !rest.IsActive {
		return nil, errors.New("restaurant not taking orders")
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	deliveryFee := rest.DeliveryFee

	var discount int64
	var promoCode string
	if in.PromoCode != "" {
		p, err := s.PromoSvc.Resolve(in.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
		discount = promoDiscount(p, subtotal, deliveryFee)
		promoCode = p.Code
	}
	total := subtotal - discount + deliveryFee

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:       userID,
			RestaurantID: cart.RestaurantID,
			Status:       entity.StatusPending,
			Subtotal:     subtotal,
			Discount:     discount,
			DeliveryFee:  deliveryFee,
			Total:        total,
			Address:      in.Address,
			Phone:        in.Phone,
			Notes:        in.Notes,
			PromoCode:    promoCode,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    it.MenuID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.Total,
			}
			for _, sel := range it.Selections {
				oi.Selections = append(oi.Selections, entity.OrderItemSelection{
					OptionID:      sel.OptionID,
					OptionValueID: sel.OptionValueID,
					PriceDelta:    sel.PriceDelta,
				})
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CheckoutRes{
			ID: order.ID, Subtotal: subtotal, Discount: discount,
			Fee: deliveryFee, Total: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyStatus(out.ID, entity.StatusPending, nil)
	return &out, nil
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, status *entity.OrderStatus, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(userID, restID, orderID uint) (*OrderDetail, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ListForDriver returns the orders a driver has claimed, newest first.
func (s *OrderService) ListForDriver(driverUserID uint, activeOnly bool, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForDriver(driverUserID, activeOnly, limit)
}

func (s *OrderService) notifyStatus(orderID uint, status entity.OrderStatus, driverID *uint) {
	if s.Notify != nil {
		s.Notify.OrderStatusChanged(orderID, status, driverID)
	}
}
