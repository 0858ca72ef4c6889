package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kampusadmin/dashboard-api/internal/models"
)

// RequireCapability gates a route group on a single capability flag. The
// flags carry no hierarchy: each check looks at exactly one boolean. The
// denial is uniform so callers learn nothing about the resource behind it.
func RequireCapability(cap models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)

		if !user.Can(cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
