package middleware

import (
	"net/http"
	"strings"
	"time"

	"homemate/services/session"
	"homemate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SessionGateMiddleware protects screen endpoints. While the auth state is
// still loading the request gets a placeholder and no redirect decision is
// made; once settled, unauthenticated callers are redirected to the sign-in
// screen with the originally requested path, and authenticated callers must
// present a session token whose hash matches the cached one.
func SessionGateMiddleware(gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		decision := gate.Decide(c.Request.URL.Path)
		if decision.Placeholder {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status":      "loading",
				"placeholder": true,
			})
			return
		}
		if decision.RedirectTo != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"redirect": decision.RedirectTo,
				"from":     decision.From,
			})
			return
		}

		// Settled and signed in: tie the request to the session token.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"redirect": session.SignInPath,
				"from":     c.Request.URL.Path,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		uid, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"redirect": session.SignInPath,
				"from":     c.Request.URL.Path,
			})
			return
		}

		// Compare against the cached token hash, refreshing its TTL on use.
		ctx := c.Request.Context()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + uid
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == redis.Nil || (err == nil && cachedHash != computedHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
			})
			return
		}
		if err == nil {
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
		} else if err != redis.Nil {
			// Cache unavailable: the token signature already checked out, so
			// let the request through rather than failing the screen.
			utils.GetLogger().Warn("auth cache unavailable, accepting validated token")
		}

		c.Set("userID", uid)
		c.Set("userEmail", email)
		if decision.User != nil {
			c.Set("user", decision.User)
		}
		c.Next()
	}
}
