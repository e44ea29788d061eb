package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type PayoutController struct {
	svc *services.PayoutService
}

func NewPayoutController(svc *services.PayoutService) *PayoutController {
	return &PayoutController{svc: svc}
}

// GET /owner/payouts
func (ctl *PayoutController) ListMine(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	items, err := ctl.svc.ListForOwner(userID, queryInt(c, "limit", 50))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/payouts
func (ctl *PayoutController) Generate(c *gin.Context) {
	var in services.GeneratePayoutIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.svc.Generate(&in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, p)
}

// GET /admin/payouts?status=
func (ctl *PayoutController) ListAll(c *gin.Context) {
	items, err := ctl.svc.ListAll(c.Query("status"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/payouts/:id/paid
func (ctl *PayoutController) MarkPaid(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.MarkPaid(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"paid": true})
}
