package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

// RequireRole guards a route group behind one or more roles. Must run after
// ValidateToken.
func RequireRole(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("roleType")
		roleStr, _ := role.(string)

		for _, allowed := range roles {
			if roleStr == string(allowed) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}
