package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plateful/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetUint("userId"), "role": c.GetString("role")})
	})
	r.GET("/admin", AuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	r := testRouter()

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", "garbage").Code)

	wrongSecret, err := utils.GenerateToken(1, "customer", "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", wrongSecret).Code)

	expired, err := utils.GenerateToken(1, "customer", testSecret, -time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/any", expired).Code)
}

func TestAuthMiddlewarePassesClaimsThrough(t *testing.T) {
	r := testRouter()

	token, err := utils.GenerateToken(42, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/any", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42,"role":"customer"}`, w.Body.String())
}

func TestAuthMiddlewareEnforcesRole(t *testing.T) {
	r := testRouter()

	customer, err := utils.GenerateToken(1, "customer", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", customer).Code)

	admin, err := utils.GenerateToken(2, "admin", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", admin).Code)
}
