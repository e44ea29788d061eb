package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"

	"github.com/gin-gonic/gin"
)

type DirectionsController struct {
	directions *services.DirectionsService
	assist     *services.AssistService
}

func NewDirectionsController(directions *services.DirectionsService, assist *services.AssistService) *DirectionsController {
	return &DirectionsController{directions: directions, assist: assist}
}

// POST /directions — never fails: with no provider or a provider error the
// response degrades to a straight line between the two points.
func (ctl *DirectionsController) Route(c *gin.Context) {
	var in services.DirectionsReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, ctl.directions.Route(c.Request.Context(), &in))
}

// POST /admin/blog/assist
func (ctl *DirectionsController) Assist(c *gin.Context) {
	var in services.AssistIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.assist.Assist(c.Request.Context(), &in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"result": out})
}
