package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/mogzealio/rest-api-v3-heroku/internal/domain" // Domain models
	"github.com/mogzealio/rest-api-v3-heroku/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// JWTAuthMiddleware validates the bearer token and resolves its identity
// claim back to a User row before the handler runs. A token whose identity
// no longer matches a user is rejected the same as an invalid token.
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse and validate the token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		user, err := domain.FindUserByID(db, claims.Identity) // Resolve identity to a user
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set("userID", user.ID) // Store the authenticated user's ID in context
		c.Next()
	}
}
