package middleware

import (
	"net/http"
	"strings"

	"ablecare/utils"

	"github.com/gin-gonic/gin"
)

// AdminIDKey is the context key under which the authenticated admin's ID is
// stored.
const AdminIDKey = "adminID"

// JWTAuthAdminMiddleware verifies the bearer token before any admin business
// logic runs. Missing or invalid tokens abort with 401.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Authorization header required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "Invalid or expired token",
			})
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}
