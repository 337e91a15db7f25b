package middlewares

import (
	"context"
	"net/http"
	"time"

	"challengecards/services"
	"challengecards/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextAdminID     = "adminID"
	ContextAdminUserID = "adminUserId"
	ContextAdminRole   = "adminRole"
)

// AuthMiddleware verifies the bearer JWT, confirms the account still exists
// and is active, and sets the admin identity in the request context.
func AuthMiddleware(jwtSecret string, admins *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		token, ok := utils.BearerToken(authHeader)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		admin, err := admins.GetByID(dbCtx, claims.Subject)
		if err != nil || !admin.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account disabled or removed"})
			c.Abort()
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Set(ContextAdminUserID, admin.UserID)
		c.Set(ContextAdminRole, admin.Role)
		c.Next()
	}
}
