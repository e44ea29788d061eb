package controllers

import (
	"plateful/pkg/resp"
	"plateful/repository"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{svc: svc}
}

// GET /restaurants?city=&cuisine=&limit=&offset=
func (ctl *RestaurantController) List(c *gin.Context) {
	f := repository.RestaurantFilter{
		City:        c.Query("city"),
		CuisineType: c.Query("cuisine"),
		Limit:       queryInt(c, "limit", 20),
		Offset:      queryInt(c, "offset", 0),
	}
	items, total, err := ctl.svc.ListPublic(f)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// GET /restaurants/:id — the storefront: restaurant plus its menus and
// options.
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	rest, err := ctl.svc.Detail(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /owner/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := ctl.svc.CreateForOwner(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /owner/restaurants/mine
func (ctl *RestaurantController) Mine(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	rest, err := ctl.svc.OwnedRestaurant(userID, false)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /owner/restaurants/mine
func (ctl *RestaurantController) Update(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := ctl.svc.UpdateForOwner(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, rest)
}

type activeReq struct {
	Active *bool `json:"active" binding:"required"`
}

// POST /owner/restaurants/mine/active
func (ctl *RestaurantController) SetActive(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in activeReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.SetActive(userID, *in.Active); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"active": *in.Active})
}

// GET /owner/dashboard
func (ctl *RestaurantController) Dashboard(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	out, err := ctl.svc.Dashboard(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /owner/menus
func (ctl *RestaurantController) ListMenus(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	menus, err := ctl.svc.ListMenus(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /owner/menus
func (ctl *RestaurantController) CreateMenu(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	var in services.MenuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.svc.CreateMenu(userID, &in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /owner/menus/:menuId
func (ctl *RestaurantController) UpdateMenu(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	var in services.MenuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.UpdateMenu(userID, menuID, &in); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /owner/menus/:menuId
func (ctl *RestaurantController) DeleteMenu(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	menuID, ok := paramUint(c, "menuId")
	if !ok {
		return
	}
	if err := ctl.svc.DeleteMenu(userID, menuID); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
