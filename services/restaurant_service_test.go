package services

import (
	"testing"

	"plateful/entity"
	"plateful/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(db,
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOrderRepository(db),
		nil)
}

func TestUnvalidatedRestaurantHiddenFromPublic(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	svc := newRestaurantService(db)

	rest, err := svc.CreateForOwner(owner.ID, &RestaurantIn{Name: "New Place"})
	require.NoError(t, err)
	assert.False(t, rest.IsValidated)

	_, err = svc.Detail(rest.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, _, err := svc.ListPublic(repository.RestaurantFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.SetValidated(rest.ID, true))

	got, err := svc.Detail(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Place", got.Name)
}

func TestDashboardGatedUntilValidated(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	svc := newRestaurantService(db)

	rest, err := svc.CreateForOwner(owner.ID, &RestaurantIn{Name: "Pending Place"})
	require.NoError(t, err)

	// the owner can see their application either way
	_, err = svc.OwnedRestaurant(owner.ID, false)
	require.NoError(t, err)

	// but menu management waits for validation
	_, err = svc.CreateMenu(owner.ID, &MenuIn{Name: "dish", Price: 1000})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.SetValidated(rest.ID, true))
	m, err := svc.CreateMenu(owner.ID, &MenuIn{Name: "dish", Price: 1000})
	require.NoError(t, err)
	assert.Equal(t, rest.ID, m.RestaurantID)
}

func TestDashboardCountsAndRevenue(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	cust := mkUser(t, db, "customer")
	rest := mkRestaurant(t, db, owner.ID, 0)
	svc := newRestaurantService(db)

	mkOrder(t, db, cust.ID, rest.ID, entity.StatusPending)
	mkOrder(t, db, cust.ID, rest.ID, entity.StatusDelivered)
	mkOrder(t, db, cust.ID, rest.ID, entity.StatusDelivered)
	mkOrder(t, db, cust.ID, rest.ID, entity.StatusCancelled)

	out, err := svc.Dashboard(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, rest.ID, out.Restaurant.ID)
	assert.EqualValues(t, 2000, out.RevenueTotal)

	counts := map[entity.OrderStatus]int64{}
	for _, c := range out.OrderCounts {
		counts[c.Status] = c.Count
	}
	assert.EqualValues(t, 1, counts[entity.StatusPending])
	assert.EqualValues(t, 2, counts[entity.StatusDelivered])
	assert.EqualValues(t, 1, counts[entity.StatusCancelled])
}

func TestOnePerOwner(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	svc := newRestaurantService(db)

	_, err := svc.CreateForOwner(owner.ID, &RestaurantIn{Name: "First"})
	require.NoError(t, err)
	_, err = svc.CreateForOwner(owner.ID, &RestaurantIn{Name: "Second"})
	assert.Error(t, err)
}

func TestMenuOpsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ownerA := mkUser(t, db, "owner")
	ownerB := mkUser(t, db, "owner")
	restA := mkRestaurant(t, db, ownerA.ID, 0)
	mkRestaurant(t, db, ownerB.ID, 0)
	menu := mkMenu(t, db, restA.ID, 1000)
	svc := newRestaurantService(db)

	err := svc.UpdateMenu(ownerB.ID, menu.ID, &MenuIn{Name: "hijack", Price: 1})
	assert.Error(t, err)

	require.NoError(t, svc.UpdateMenu(ownerA.ID, menu.ID, &MenuIn{Name: "renamed", Price: 1100}))

	var got entity.Menu
	require.NoError(t, db.First(&got, menu.ID).Error)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, int64(1100), got.Price)
}

func TestListPublicFilters(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	a := mkRestaurant(t, db, owner.ID, 0)
	require.NoError(t, db.Model(a).Updates(map[string]any{"city": "Paris", "cuisine_type": "thai"}).Error)
	owner2 := mkUser(t, db, "owner")
	b := mkRestaurant(t, db, owner2.ID, 0)
	require.NoError(t, db.Model(b).Updates(map[string]any{"city": "Lyon", "cuisine_type": "thai"}).Error)
	svc := newRestaurantService(db)

	items, total, err := svc.ListPublic(repository.RestaurantFilter{City: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)

	_, total, err = svc.ListPublic(repository.RestaurantFilter{CuisineType: "thai"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
