package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

// POST /reviews/restaurant
func (ctl *ReviewController) CreateRestaurant(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := ctl.svc.SubmitRestaurant(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, r)
}

// POST /reviews/driver
func (ctl *ReviewController) CreateDriver(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r, err := ctl.svc.SubmitDriver(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, r)
}

// GET /restaurants/:id/reviews
func (ctl *ReviewController) ListForRestaurant(c *gin.Context) {
	restID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	items, err := ctl.svc.ListForRestaurant(restID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /drivers/:id/reviews
func (ctl *ReviewController) ListForDriver(c *gin.Context) {
	driverUserID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	items, err := ctl.svc.ListForDriver(driverUserID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}
