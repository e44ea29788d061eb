package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"

	"github.com/gin-gonic/gin"
)

// deviceTokenHeader identifies an anonymous browser for popup frequency
// capping. The backend mints one when the client has none yet.
const deviceTokenHeader = "X-Device-Token"

type ContentController struct {
	svc *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{svc: svc}
}

// GET /content/banners
func (ctl *ContentController) Banners(c *gin.Context) {
	items, err := ctl.svc.ActiveBanners()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/banners
func (ctl *ContentController) CreateBanner(c *gin.Context) {
	var in services.BannerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := ctl.svc.CreateBanner(&in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, b)
}

// POST /admin/banners/:id/active
func (ctl *ContentController) SetBannerActive(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in activeReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.SetBannerActive(id, *in.Active); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"active": *in.Active})
}

// DELETE /admin/banners/:id
func (ctl *ContentController) DeleteBanner(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.DeleteBanner(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /content/popups — popups the calling device has not exhausted yet. The
// device token echoes back in the response header so a fresh client can keep
// it.
func (ctl *ContentController) Popups(c *gin.Context) {
	items, token, err := ctl.svc.PopupsForDevice(c.GetHeader(deviceTokenHeader))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.Header(deviceTokenHeader, token)
	resp.OK(c, items)
}

// POST /content/popups/:id/seen
func (ctl *ContentController) PopupSeen(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	token := c.GetHeader(deviceTokenHeader)
	if token == "" {
		resp.BadRequest(c, "missing device token")
		return
	}
	if err := ctl.svc.MarkPopupSeen(id, token); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"seen": true})
}

// POST /admin/popups
func (ctl *ContentController) CreatePopup(c *gin.Context) {
	var in services.PopupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.svc.CreatePopup(&in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, p)
}

type categoryReq struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/blog/categories
func (ctl *ContentController) CreateCategory(c *gin.Context) {
	var in categoryReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.svc.CreateCategory(in.Name)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /blog/categories
func (ctl *ContentController) Categories(c *gin.Context) {
	items, err := ctl.svc.ListCategories()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/blog/articles
func (ctl *ContentController) CreateArticle(c *gin.Context) {
	var in services.ArticleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := ctl.svc.CreateArticle(&in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, a)
}

// PUT /admin/blog/articles/:id
func (ctl *ContentController) UpdateArticle(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var in services.ArticleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.svc.UpdateArticle(id, &in); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// GET /blog/articles?category=&limit=&offset=
func (ctl *ContentController) Articles(c *gin.Context) {
	categoryID := uint(queryInt(c, "category", 0))
	items, err := ctl.svc.ListArticles(categoryID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /blog/articles/:slug
func (ctl *ContentController) ArticleBySlug(c *gin.Context) {
	a, err := ctl.svc.ArticleBySlug(c.Param("slug"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, a)
}
