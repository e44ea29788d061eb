package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	svc *services.SupportService
}

func NewSupportController(svc *services.SupportService) *SupportController {
	return &SupportController{svc: svc}
}

// POST /support/tickets
func (ctl *SupportController) Open(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.TicketIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := ctl.svc.Open(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, t)
}

// GET /support/tickets
func (ctl *SupportController) ListMine(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	items, err := ctl.svc.ListForUser(userID, queryInt(c, "limit", 50))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /admin/support/tickets?status=
func (ctl *SupportController) ListAll(c *gin.Context) {
	items, err := ctl.svc.ListAll(c.Query("status"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

type closeTicketReq struct {
	Reply string `json:"reply"`
}

// POST /admin/support/tickets/:id/close
func (ctl *SupportController) Close(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in closeTicketReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.Close(id, in.Reply); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"closed": true})
}
