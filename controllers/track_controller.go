package controllers

import (
	"plateful/ws"

	"github.com/gin-gonic/gin"
)

// TrackController upgrades tracking subscriptions onto the hub. Rooms are
// keyed by order, restaurant or driver id.
type TrackController struct {
	hub *ws.TrackHub
}

func NewTrackController(hub *ws.TrackHub) *TrackController {
	return &TrackController{hub: hub}
}

// GET /ws/orders/:id
func (ctl *TrackController) Order(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	ctl.hub.ServeOrder(c, id)
}

// GET /ws/restaurants/:id
func (ctl *TrackController) Restaurant(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	ctl.hub.ServeRestaurant(c, id)
}

// GET /ws/drivers/:id
func (ctl *TrackController) Driver(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	ctl.hub.ServeDriver(c, id)
}
