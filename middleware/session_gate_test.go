package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homemate/middleware"
	"homemate/models"
	"homemate/services/session"
	"homemate/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(t *testing.T, gate *session.Gate) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = utils.AuthCacheClient.Close()
		utils.AuthCacheClient = nil
	})

	r := gin.New()
	r.GET("/protected", middleware.SessionGateMiddleware(gate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("userEmail")})
	})
	return r
}

func TestGateMiddlewarePlaceholderWhileLoading(t *testing.T) {
	gate := session.NewGate()
	r := newGatedRouter(t, gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"placeholder":true`)
	assert.NotContains(t, w.Body.String(), "redirect")
}

func TestGateMiddlewareRedirectsSignedOut(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(nil)
	r := newGatedRouter(t, gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/auth"`)
	assert.Contains(t, w.Body.String(), `"from":"/protected"`)
}

func TestGateMiddlewareAcceptsCachedToken(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1", Email: "sam@example.com"})
	r := newGatedRouter(t, gate)

	token, err := utils.GenerateToken("u1", "sam@example.com", time.Hour)
	require.NoError(t, err)
	require.NoError(t, utils.AuthCacheClient.Set(context.Background(),
		utils.AuthCachePrefix+"u1", utils.HashToken(token), time.Hour).Err())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sam@example.com")
}

func TestGateMiddlewareRejectsMissingHeader(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1"})
	r := newGatedRouter(t, gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateMiddlewareRejectsTokenMismatch(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1"})
	r := newGatedRouter(t, gate)

	token, err := utils.GenerateToken("u1", "sam@example.com", time.Hour)
	require.NoError(t, err)
	require.NoError(t, utils.AuthCacheClient.Set(context.Background(),
		utils.AuthCachePrefix+"u1", utils.HashToken("another token"), time.Hour).Err())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token mismatch")
}

func TestGateMiddlewareRejectsUncachedToken(t *testing.T) {
	gate := session.NewGate()
	gate.Apply(&models.UserProfile{UID: "u1"})
	r := newGatedRouter(t, gate)

	token, err := utils.GenerateToken("u1", "sam@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
