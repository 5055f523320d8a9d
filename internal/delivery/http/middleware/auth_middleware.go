package middleware

import (
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the account onto the
// context. The role stored in the database is authoritative; the token only
// identifies the user.
func AuthMiddleware(tokens *auth.TokenManager, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Not authorized, no token", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized, token failed", nil)
			c.Abort()
			return
		}

		// A valid token for a deleted account is still unauthorized.
		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized, token failed", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(string(domain.KeyUser), user)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It assumes
// AuthMiddleware ran first.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(domain.KeyUserRole))
		current, ok := value.(domain.Role)
		if exists && ok {
			for _, role := range roles {
				if current == role {
					c.Next()
					return
				}
			}
		}
		response.Error(c, http.StatusForbidden, "Access denied. Insufficient permissions.", nil)
		c.Abort()
	}
}
