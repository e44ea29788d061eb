package services

import (
	"testing"

	"plateful/entity"
	"plateful/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db, repository.NewReviewRepository(db), repository.NewOrderRepository(db))
}

func TestSecondReviewForSameOrderRejected(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusDelivered)
	svc := newReviewService(db)

	first, err := svc.SubmitRestaurant(user.ID, &ReviewIn{OrderID: o.ID, Rating: 4, Comment: "good"})
	require.NoError(t, err)

	_, err = svc.SubmitRestaurant(user.ID, &ReviewIn{OrderID: o.ID, Rating: 1, Comment: "changed my mind"})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// the original stays intact
	var got entity.Review
	require.NoError(t, db.First(&got, first.ID).Error)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "good", got.Comment)
}

func TestReviewUpdatesRestaurantAggregate(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	userA := mkUser(t, db, "customer")
	userB := mkUser(t, db, "customer")
	oA := mkOrder(t, db, userA.ID, rest.ID, entity.StatusDelivered)
	oB := mkOrder(t, db, userB.ID, rest.ID, entity.StatusDelivered)
	svc := newReviewService(db)

	_, err := svc.SubmitRestaurant(userA.ID, &ReviewIn{OrderID: oA.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.SubmitRestaurant(userB.ID, &ReviewIn{OrderID: oB.ID, Rating: 2})
	require.NoError(t, err)

	var got entity.Restaurant
	require.NoError(t, db.First(&got, rest.ID).Error)
	assert.InDelta(t, 3.5, got.Rating, 0.001)
	assert.Equal(t, int64(2), got.ReviewsCount)
}

func TestReviewRequiresDeliveredOrder(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusDelivering)
	svc := newReviewService(db)

	_, err := svc.SubmitRestaurant(user.ID, &ReviewIn{OrderID: o.ID, Rating: 5})
	assert.Error(t, err)
}

func TestDriverReviewUpdatesDriverAggregate(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	driver := mkUser(t, db, "driver")
	mkDriverProfile(t, db, driver.ID, true)

	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusDelivered)
	require.NoError(t, db.Model(o).Update("driver_id", driver.ID).Error)
	svc := newReviewService(db)

	_, err := svc.SubmitDriver(user.ID, &ReviewIn{OrderID: o.ID, Rating: 4})
	require.NoError(t, err)

	var got entity.DriverProfile
	require.NoError(t, db.Where("user_id = ?", driver.ID).First(&got).Error)
	assert.InDelta(t, 4.0, got.Rating, 0.001)
	assert.Equal(t, int64(1), got.ReviewsCount)

	_, err = svc.SubmitDriver(user.ID, &ReviewIn{OrderID: o.ID, Rating: 1})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}
