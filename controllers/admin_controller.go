package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"

	"github.com/gin-gonic/gin"
)

// AdminController covers the back-office operations: restaurant validation
// and order intervention.
type AdminController struct {
	restaurants *services.RestaurantService
	orders      *services.OrderService
}

func NewAdminController(restaurants *services.RestaurantService, orders *services.OrderService) *AdminController {
	return &AdminController{restaurants: restaurants, orders: orders}
}

// GET /admin/restaurants
func (ctl *AdminController) ListRestaurants(c *gin.Context) {
	items, total, err := ctl.restaurants.ListAll(queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

type validateReq struct {
	Validated *bool `json:"validated" binding:"required"`
}

// POST /admin/restaurants/:id/validate
func (ctl *AdminController) ValidateRestaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in validateReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.restaurants.SetValidated(id, *in.Validated); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"validated": *in.Validated})
}

// POST /admin/orders/:orderId/cancel
func (ctl *AdminController) CancelOrder(c *gin.Context) {
	orderID, ok := paramUint(c, "orderId")
	if !ok {
		return
	}
	if err := ctl.orders.AdminCancel(orderID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
