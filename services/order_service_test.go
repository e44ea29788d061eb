package services

import (
	"testing"

	"plateful/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutComposesTotals(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 500)
	menuA := mkMenu(t, db, rest.ID, 1000)
	menuB := mkMenu(t, db, rest.ID, 1500)
	user := mkUser(t, db, "customer")
	carts := newCartService(db)
	orders := newOrderService(db)

	require.NoError(t, carts.Add(user.ID, addIn(rest.ID, menuA.ID, 1)))
	require.NoError(t, carts.Add(user.ID, addIn(rest.ID, menuB.ID, 2)))

	out, err := orders.CreateFromCart(user.ID, &CheckoutReq{Address: "1 Test St", Phone: "+33600000000"})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), out.Subtotal)
	assert.Equal(t, int64(0), out.Discount)
	assert.Equal(t, int64(500), out.Fee)
	assert.Equal(t, int64(4500), out.Total)

	// item snapshots carry the price at checkout time
	detail, err := orders.DetailForUser(user.ID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, detail.Order.Status)
	require.Len(t, detail.Items, 2)

	// the cart is emptied in the same transaction
	cart, err := carts.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Cart.Items)
}

func TestCheckoutSurvivesLaterPriceChange(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	menu := mkMenu(t, db, rest.ID, 1000)
	user := mkUser(t, db, "customer")
	carts := newCartService(db)
	orders := newOrderService(db)

	require.NoError(t, carts.Add(user.ID, addIn(rest.ID, menu.ID, 1)))
	out, err := orders.CreateFromCart(user.ID, &CheckoutReq{Address: "a", Phone: "p"})
	require.NoError(t, err)

	require.NoError(t, db.Model(menu).Update("price", 9999).Error)

	detail, err := orders.DetailForUser(user.ID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), detail.Items[0].UnitPrice)
	assert.Equal(t, int64(1000), detail.Order.Subtotal)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := mkUser(t, db, "customer")
	orders := newOrderService(db)

	_, err := orders.CreateFromCart(user.ID, &CheckoutReq{Address: "a", Phone: "p"})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutAppliesPromo(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 500)
	menu := mkMenu(t, db, rest.ID, 2000)
	user := mkUser(t, db, "customer")
	carts := newCartService(db)
	orders := newOrderService(db)

	require.NoError(t, db.Create(&entity.Promotion{
		Code: "SAVE300", PromoType: entity.PromoAmount, Value: 300, IsActive: true,
	}).Error)

	require.NoError(t, carts.Add(user.ID, addIn(rest.ID, menu.ID, 1)))
	out, err := orders.CreateFromCart(user.ID, &CheckoutReq{Address: "a", Phone: "p", PromoCode: "save300"})
	require.NoError(t, err)
	assert.Equal(t, int64(300), out.Discount)
	assert.Equal(t, int64(2200), out.Total)
}

func TestCheckoutRejectsBadPromo(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	menu := mkMenu(t, db, rest.ID, 1000)
	user := mkUser(t, db, "customer")
	carts := newCartService(db)
	orders := newOrderService(db)

	require.NoError(t, carts.Add(user.ID, addIn(rest.ID, menu.ID, 1)))
	_, err := orders.CreateFromCart(user.ID, &CheckoutReq{Address: "a", Phone: "p", PromoCode: "NOPE"})
	assert.ErrorIs(t, err, ErrInvalidPromo)
}

func TestOwnerAcceptIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPending)
	orders := newOrderService(db)

	require.NoError(t, orders.OwnerAccept(owner.ID, o.ID))
	// repeating the accept is a no-op, not a conflict
	require.NoError(t, orders.OwnerAccept(owner.ID, o.ID))

	got, err := orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, got.Status)
}

func TestTransitionOutOfOrderConflicts(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPending)
	orders := newOrderService(db)

	err := orders.OwnerMarkReady(owner.ID, o.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTransitionByWrongOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	stranger := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPending)
	orders := newOrderService(db)

	err := orders.OwnerAccept(stranger.ID, o.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDriverClaimWinsAtMostOnce(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	driver1 := mkUser(t, db, "driver")
	driver2 := mkUser(t, db, "driver")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPickupPending)
	orders := newOrderService(db)

	require.NoError(t, orders.DriverClaim(driver1.ID, o.ID))
	err := orders.DriverClaim(driver2.ID, o.ID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	got, err := orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPickupAccepted, got.Status)
	require.NotNil(t, got.DriverID)
	assert.Equal(t, driver1.ID, *got.DriverID)
}

func TestDriverStepsRequireAssignment(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	driver1 := mkUser(t, db, "driver")
	driver2 := mkUser(t, db, "driver")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPickupPending)
	orders := newOrderService(db)

	require.NoError(t, orders.DriverClaim(driver1.ID, o.ID))
	err := orders.DriverConfirmPickup(driver2.ID, o.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, orders.DriverConfirmPickup(driver1.ID, o.ID))
	require.NoError(t, orders.DriverStartDelivery(driver1.ID, o.ID))
	require.NoError(t, orders.DriverComplete(driver1.ID, o.ID))

	got, err := orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)
}

func TestCustomerCancelOnlyBeforeCooking(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	orders := newOrderService(db)

	early := mkOrder(t, db, user.ID, rest.ID, entity.StatusAccepted)
	require.NoError(t, orders.CustomerCancel(user.ID, early.ID))

	late := mkOrder(t, db, user.ID, rest.ID, entity.StatusPreparing)
	err := orders.CustomerCancel(user.ID, late.ID)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := orders.Repo.GetOrder(late.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, got.Status)
}

func TestCustomerCancelGuardIsConditionalWrite(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	orders := newOrderService(db)

	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusPending)

	// the kitchen wins the race: status moves on between the customer's
	// read and the cancel write
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", o.ID).
		Update("status", entity.StatusPreparing).Error)

	affected, err := orders.Repo.CancelGuardFrom(db, o.ID,
		[]entity.OrderStatus{entity.StatusPending, entity.StatusAccepted})
	require.NoError(t, err)
	assert.Zero(t, affected)

	got, err := orders.Repo.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, got.Status)
}

func TestCancelTerminalOrderConflicts(t *testing.T) {
	db := newTestDB(t)
	owner := mkUser(t, db, "owner")
	rest := mkRestaurant(t, db, owner.ID, 0)
	user := mkUser(t, db, "customer")
	o := mkOrder(t, db, user.ID, rest.ID, entity.StatusDelivered)
	orders := newOrderService(db)

	err := orders.AdminCancel(o.ID)
	assert.ErrorIs(t, err, ErrConflict)
}
