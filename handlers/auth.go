package handlers

import (
	"net/http"

	"homemate/models"
	"homemate/services/auth"
	"homemate/services/notify"
	"homemate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler covers the auth operations that do not flow through a form:
// federated sign-in, sign-out and the profile screen.
type AuthHandler struct {
	Gateway  auth.Gateway
	Notifier notify.Notifier
}

func NewAuthHandler(gateway auth.Gateway, notifier notify.Notifier) *AuthHandler {
	return &AuthHandler{Gateway: gateway, Notifier: notifier}
}

// GoogleSignInHandler handles POST /api/auth/google.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDToken string `json:"idToken" binding:"required"`
		From    string `json:"from"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Gateway.SignInWithProvider(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Error("Federated sign-in failed", zap.Error(err))
		h.Notifier.Error(err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	h.Notifier.Success("Login successfully!")

	token, err := issueSessionToken(c.Request.Context(), user.UID, user.Email)
	if err != nil {
		logger.Error("Failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	redirect := req.From
	if redirect == "" {
		redirect = "/"
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "redirect": redirect})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	current := h.Gateway.CurrentUser()
	if err := h.Gateway.SignOut(c.Request.Context()); err != nil {
		logger.Error("Sign-out failed", zap.Error(err))
		h.Notifier.Error(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if current != nil {
		cacheKey := utils.AuthCachePrefix + current.UID
		_ = utils.GetAuthCacheClient().Del(c.Request.Context(), cacheKey).Err()
		h.Notifier.Success(current.DisplayName + " LogOut successfull")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfileHandler handles GET /api/auth/profile.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	user := h.Gateway.CurrentUser()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no signed-in user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileHandler handles PATCH /api/auth/profile. Only displayName and
// photoURL are mutable; email never changes through this layer.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Gateway.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		logger.Error("Profile update failed", zap.Error(err))
		h.Notifier.Error(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.Notifier.Success("Your Name and Photo update successfull")
	c.JSON(http.StatusOK, user)
}
