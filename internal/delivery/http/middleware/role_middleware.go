package middleware

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose role is not in the allow list.
// Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
