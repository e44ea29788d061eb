package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminHostRewrite sends requests arriving on the dedicated admin subdomain
// to the admin auth path before the router sees them. Other paths on that
// host pass through unchanged.
func AdminHostRewrite(adminHost string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminHost == "" {
			c.Next()
			return
		}
		host := c.Request.Host
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		if strings.EqualFold(host, adminHost) && c.Request.URL.Path == "/auth" {
			c.Redirect(http.StatusTemporaryRedirect, "/auth/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
