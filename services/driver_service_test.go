package services

import (
	"testing"

	"plateful/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLocationSkipsTinyMoves(t *testing.T) {
	db := newTestDB(t)
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)
	svc := newDriverService(db)

	// no cached position yet: always a write
	written, err := svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85, Longitude: 2.35})
	require.NoError(t, err)
	assert.True(t, written)

	// within the epsilon on both axes: skipped
	written, err = svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85005, Longitude: 2.35005})
	require.NoError(t, err)
	assert.False(t, written)

	// a real move writes again
	written, err = svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.86, Longitude: 2.35})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestGoingOffShiftDropsCachedPosition(t *testing.T) {
	db := newTestDB(t)
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)
	svc := newDriverService(db)

	_, err := svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85, Longitude: 2.35})
	require.NoError(t, err)

	require.NoError(t, svc.SetAvailability(driver.ID, false))

	var p entity.DriverProfile
	require.NoError(t, db.Where("user_id = ?", driver.ID).First(&p).Error)
	assert.Nil(t, p.LocationUpdatedAt)

	// back on shift, the identical position still writes since the cache is gone
	require.NoError(t, svc.SetAvailability(driver.ID, true))
	written, err := svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85, Longitude: 2.35})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestReportLocationRequiresAvailability(t *testing.T) {
	db := newTestDB(t)
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, false)
	svc := newDriverService(db)

	_, err := svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85, Longitude: 2.35})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCannotGoOffShiftMidDelivery(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)

	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusDelivering)
	require.NoError(t, db.Model(o).Update("driver_id", driver.ID).Error)
	svc := newDriverService(db)

	err := svc.SetAvailability(driver.ID, false)
	assert.Error(t, err)

	// once delivered the toggle works again
	require.NoError(t, db.Model(o).Update("status", entity.StatusDelivered).Error)
	require.NoError(t, svc.SetAvailability(driver.ID, false))
}

func TestListOpenJobsComputesPickupDistance(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	require.NoError(t, db.Model(rest).Updates(map[string]any{"latitude": 48.86, "longitude": 2.35}).Error)
	user := mkUser(t, db, "customer")
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)

	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPickupPending)
	svc := newDriverService(db)

	_, err := svc.ReportLocation(driver.ID, &LocationIn{Latitude: 48.85, Longitude: 2.35})
	require.NoError(t, err)

	jobs, err := svc.ListOpenJobs(driver.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, o.ID, jobs[0].OrderID)
	assert.Equal(t, rest.Name, jobs[0].RestaurantName)
	// ~1.1 km between the two points
	assert.InDelta(t, 1.11, jobs[0].DistanceKm, 0.1)
}

func TestClaimedOrdersLeaveTheJobBoard(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)

	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPickupPending)
	drivers := newDriverService(db)
	orders := newOrderService(db)

	jobs, err := drivers.ListOpenJobs(driver.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	require.NoError(t, orders.DriverClaim(driver.ID, o.ID))

	jobs, err = drivers.ListOpenJobs(driver.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
