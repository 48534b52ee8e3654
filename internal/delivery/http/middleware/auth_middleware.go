package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token and loads the caller into
// the request context. The token is read from the "token" cookie first,
// then from the Authorization header.
//
// Role and email are always re-read from the database, never trusted
// from the token: a role change takes effect on the next request even
// for tokens minted before it.
func AuthMiddleware(tokens *auth.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Not authenticated.", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authenticated.", nil)
			c.Abort()
			return
		}

		// Deleted accounts keep their valid token until expiry; the DB
		// lookup is what actually ends the session.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authenticated.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
