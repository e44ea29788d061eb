package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func hostRouter(adminHost string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminHostRewrite(adminHost))
	r.GET("/auth", func(c *gin.Context) { c.String(http.StatusOK, "public auth") })
	r.GET("/auth/admin", func(c *gin.Context) { c.String(http.StatusOK, "admin auth") })
	return r
}

func doHostGet(r *gin.Engine, host, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminHostRedirectsAuth(t *testing.T) {
	r := hostRouter("admin.example.com")

	w := doHostGet(r, "admin.example.com", "/auth")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/auth/admin", w.Header().Get("Location"))

	// the port is ignored when matching the host
	w = doHostGet(r, "admin.example.com:8080", "/auth")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestOtherHostsPassThrough(t *testing.T) {
	r := hostRouter("admin.example.com")

	w := doHostGet(r, "www.example.com", "/auth")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public auth", w.Body.String())

	// other paths on the admin host are untouched
	w = doHostGet(r, "admin.example.com", "/auth/admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmptyAdminHostDisablesRewrite(t *testing.T) {
	r := hostRouter("")
	w := doHostGet(r, "admin.example.com", "/auth")
	assert.Equal(t, http.StatusOK, w.Code)
}
