package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer-facing order surface: checkout from the
// cart, history, detail and cancellation.
type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// POST /orders/checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.CheckoutReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.svc.CreateFromCart(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	items, err := ctl.svc.ListForUser(userID, queryInt(c, "limit", 20))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	orderID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	out, err := ctl.svc.DetailForUser(userID, orderID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	orderID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.CustomerCancel(userID, orderID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
