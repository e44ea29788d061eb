package controllers

import (
	"plateful/entity"
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

// OwnerOrderController is the restaurant dashboard's view of orders: the
// queue, detail, and the kitchen-side lifecycle steps.
type OwnerOrderController struct {
	svc *services.OrderService
}

func NewOwnerOrderController(svc *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{svc: svc}
}

// GET /owner/restaurants/:id/orders?status=&page=&limit=
func (ctl *OwnerOrderController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	restID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		status = &st
	}

	out, err := ctl.svc.ListForRestaurant(userID, restID, status, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /owner/restaurants/:id/orders/:orderId
func (ctl *OwnerOrderController) Detail(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	restID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	orderID, ok := paramUint(c, "orderId")
	if !ok {
		return
	}
	out, err := ctl.svc.DetailForRestaurant(userID, restID, orderID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

func (ctl *OwnerOrderController) step(c *gin.Context, fn func(ownerID, orderID uint) error) {
	userID := utils.CurrentUserID(c)
	orderID, ok := paramUint(c, "orderId")
	if !ok {
		return
	}
	if err := fn(userID, orderID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /owner/orders/:orderId/accept
func (ctl *OwnerOrderController) Accept(c *gin.Context) {
	ctl.step(c, ctl.svc.OwnerAccept)
}

// POST /owner/orders/:orderId/preparing
func (ctl *OwnerOrderController) StartPreparing(c *gin.Context) {
	ctl.step(c, ctl.svc.OwnerStartPreparing)
}

// POST /owner/orders/:orderId/ready
func (ctl *OwnerOrderController) MarkReady(c *gin.Context) {
	ctl.step(c, ctl.svc.OwnerMarkReady)
}

// POST /owner/orders/:orderId/cancel
func (ctl *OwnerOrderController) Cancel(c *gin.Context) {
	ctl.step(c, ctl.svc.OwnerCancel)
}
