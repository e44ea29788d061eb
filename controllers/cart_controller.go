package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{svc: svc}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	out, err := ctl.svc.Get(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.Add(userID, &in); err != nil {
		writeErr(c, err)
		return
	}
	out, err := ctl.svc.Get(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

type qtyReq struct {
	Qty int `json:"qty"`
}

// PATCH /cart/items/:itemId
func (ctl *CartController) UpdateQty(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	var in qtyReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.UpdateQty(userID, itemID, in.Qty); err != nil {
		writeErr(c, err)
		return
	}
	out, err := ctl.svc.Get(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /cart/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	if err := ctl.svc.RemoveItem(userID, itemID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if err := ctl.svc.Clear(userID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
