package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type DriverController struct {
	drivers *services.DriverService
	orders  *services.OrderService
}

func NewDriverController(drivers *services.DriverService, orders *services.OrderService) *DriverController {
	return &DriverController{drivers: drivers, orders: orders}
}

// GET /driver/profile
func (ctl *DriverController) Profile(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	p, err := ctl.drivers.GetProfile(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT /driver/profile
func (ctl *DriverController) UpsertProfile(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.DriverProfileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.drivers.UpsertProfile(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

type availabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// POST /driver/availability
func (ctl *DriverController) SetAvailability(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in availabilityReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.drivers.SetAvailability(userID, *in.Available); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *in.Available})
}

// POST /driver/location
func (ctl *DriverController) ReportLocation(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.LocationIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	written, err := ctl.drivers.ReportLocation(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"stored": written})
}

// GET /driver/jobs
func (ctl *DriverController) Jobs(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	jobs, err := ctl.drivers.ListOpenJobs(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, jobs)
}

// GET /driver/orders?active=1
func (ctl *DriverController) MyOrders(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	activeOnly := c.Query("active") == "1"
	orders, err := ctl.orders.ListForDriver(userID, activeOnly, queryInt(c, "limit", 50))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *DriverController) step(c *gin.Context, fn func(driverUserID, orderID uint) error) {
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

// POST /driver/orders/:orderId/claim
func (ctl *DriverController) Claim(c *gin.Context) {
	ctl.step(c, ctl.orders.DriverClaim)
}

// POST /driver/orders/:orderId/pickup
func (ctl *DriverController) ConfirmPickup(c *gin.Context) {
	ctl.step(c, ctl.orders.DriverConfirmPickup)
}

// POST /driver/orders/:orderId/delivering
func (ctl *DriverController) StartDelivery(c *gin.Context) {
	ctl.step(c, ctl.orders.DriverStartDelivery)
}

// POST /driver/orders/:orderId/complete
func (ctl *DriverController) Complete(c *gin.Context) {
	ctl.step(c, ctl.orders.DriverComplete)
}
