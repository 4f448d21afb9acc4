package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"spotbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware resolves the acting user from a Bearer token and rejects
// tokens present on the Redis revocation list.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Revocation check. A Redis outage is logged and treated as a miss
		// rather than locking everyone out.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			revokedKey := utils.AuthCachePrefix + "revoked:" + utils.HashToken(tokenString)
			n, err := authCache.Exists(ctx, revokedKey).Result()
			if err != nil {
				log.Printf("WARNING: error checking token revocation: %v", err)
			} else if n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token revoked",
				})
				return
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
