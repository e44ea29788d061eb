package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	svc *services.PromotionService
}

func NewPromotionController(svc *services.PromotionService) *PromotionController {
	return &PromotionController{svc: svc}
}

type validatePromoReq struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

// POST /promotions/validate — lets the cart page price a code before
// checkout. Checkout re-resolves the code; this is advisory only.
func (ctl *PromotionController) Validate(c *gin.Context) {
	var in validatePromoReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.svc.Resolve(in.Code, in.Subtotal)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /admin/promotions
func (ctl *PromotionController) Create(c *gin.Context) {
	var in services.PromotionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.svc.Create(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, p)
}

// GET /admin/promotions
func (ctl *PromotionController) List(c *gin.Context) {
	items, err := ctl.svc.List(queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/promotions/:id/active
func (ctl *PromotionController) SetActive(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in activeReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.SetActive(id, *in.Active); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"active": *in.Active})
}

// DELETE /admin/promotions/:id
func (ctl *PromotionController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.Delete(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
