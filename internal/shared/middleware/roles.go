package middleware

import (
	"github.com/gin-gonic/gin"

	"greenmarket-backend/internal/shared/response"
)

// RequireAdmin allows only users with the admin role.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return requireRole("admin")
}

// RequireSeller allows sellers and admins. Admins pass because they
// manage listings on behalf of sellers.
func RequireSeller() gin.HandlerFunc {
	return requireRole("seller", "admin")
}

func requireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			response.Forbidden(c, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			response.Forbidden(c, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Access denied: insufficient permissions")
		c.Abort()
	}
}
