package services

import (
	"fmt"
	"testing"

	"plateful/configs"
	"plateful/entity"
	"plateful/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := configs.ConnectDB(dsn)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func mkUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s@test.local", uuid.NewString()),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mkRestaurant(t *testing.T, db *gorm.DB, ownerID uint, deliveryFee int64) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:        "Test Kitchen",
		OwnerID:     ownerID,
		IsActive:    true,
		IsValidated: true,
		DeliveryFee: deliveryFee,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func mkMenu(t *testing.T, db *gorm.DB, restID uint, price int64) *entity.Menu {
	t.Helper()
	m := &entity.Menu{
		Name:         fmt.Sprintf("dish-%s", uuid.NewString()[:8]),
		Price:        price,
		IsAvailable:  true,
		RestaurantID: restID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func mkOptionValue(t *testing.T, db *gorm.DB, menuID uint, adjustment int64) *entity.OptionValue {
	t.Helper()
	opt := &entity.Option{Name: "size", MenuID: menuID}
	require.NoError(t, db.Create(opt).Error)
	v := &entity.OptionValue{Name: "large", PriceAdjustment: adjustment, OptionID: opt.ID}
	require.NoError(t, db.Create(v).Error)
	return v
}

func mkOrder(t *testing.T, db *gorm.DB, userID, restID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		UserID:       userID,
		RestaurantID: restID,
		Status:       status,
		Subtotal:     1000,
		Total:        1000,
		Address:      "1 Test St",
		Phone:        "+33600000000",
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func mkDriverProfile(t *testing.T, db *gorm.DB, userID uint, available bool) *entity.DriverProfile {
	t.Helper()
	p := &entity.DriverProfile{
		UserID:       userID,
		VehiclePlate: "AA-000-BB",
		License:      "L-123",
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		NewPromotionService(repository.NewPromotionRepository(db)),
		nil)
}

func newDriverService(db *gorm.DB) *DriverService {
	return NewDriverService(db, repository.NewDriverRepository(db), repository.NewOrderRepository(db), nil)
}
