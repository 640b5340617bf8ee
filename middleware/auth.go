package middleware

import (
	"net/http"
	"strings"

	userRepo "physiocare/database/repository/user"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the Bearer token, checks the stored session
// hash (auth cache first, account document as fallback) and sets "userID"
// and "role" on the request context.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Auth cache first; on miss or unavailable cache fall back to the
		// stored hash on the account document.
		verified := false
		if authCache != nil {
			if cached, err := authCache.Get(c.Request.Context(), utils.AuthCachePrefix+userID).Result(); err == nil {
				if cached != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
					return
				}
				verified = true
			}
		}
		if !verified {
			account, err := users.GetByID(c.Request.Context(), userID)
			if err != nil || account.TokenHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
				return
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role does not match.
// It must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
