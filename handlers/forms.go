package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"homemate/services/forms"
	"homemate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler exposes the form session flow: start a screen, update a field,
// submit.
type FormHandler struct {
	Service forms.FormService
}

func NewFormHandler(service forms.FormService) *FormHandler {
	return &FormHandler{Service: service}
}

// StartFormHandler handles POST /api/forms/start/:screen.
func (h *FormHandler) StartFormHandler(c *gin.Context) {
	logger := utils.GetLogger()
	screen := c.Param("screen")

	var req struct {
		Seed map[string]string `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	snap, err := h.Service.Start(c.Request.Context(), screen, req.Seed)
	if err != nil {
		logger.Error("Failed to start form session", zap.String("screen", screen), zap.Error(err))
		var stateErr utils.StateError
		if errors.As(err, &stateErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": stateErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start form session"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SetFormFieldHandler handles PATCH /api/forms/session/:sessionID/field.
func (h *FormHandler) SetFormFieldHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req struct {
		Name  string `json:"name" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	snap, err := h.Service.SetField(c.Request.Context(), sessionID, req.Name, req.Value)
	if err != nil {
		var stateErr utils.StateError
		if errors.As(err, &stateErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": stateErr.Message})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "form session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SubmitFormHandler handles POST /api/forms/session/:sessionID/submit. A successful
// login or registration also mints the app session token.
func (h *FormHandler) SubmitFormHandler(c *gin.Context) {
	logger := utils.GetLogger()
	sessionID := c.Param("sessionID")

	result, err := h.Service.Submit(c.Request.Context(), sessionID)
	if err != nil {
		var stateErr utils.StateError
		if errors.As(err, &stateErr) {
			// Blocked submit: return the snapshot so inline errors render.
			snap, snapErr := h.Service.Snapshot(c.Request.Context(), sessionID)
			if snapErr != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "form session not found or expired"})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": stateErr.Message, "form": snap})
			return
		}
		var authErr utils.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
			return
		}
		var netErr utils.NetworkError
		if errors.As(err, &netErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": netErr.Error()})
			return
		}
		logger.Error("Form submit failed", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"result": result}
	if result.User != nil {
		token, err := issueSessionToken(c.Request.Context(), result.User.UID, result.User.Email)
		if err != nil {
			logger.Error("Failed to issue session token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
			return
		}
		resp["token"] = token
	}
	c.JSON(http.StatusOK, resp)
}

// issueSessionToken mints the app JWT and caches its hash for the session
// gate to compare against.
func issueSessionToken(ctx context.Context, uid, email string) (string, error) {
	token, err := utils.GenerateToken(uid, email, 24*time.Hour)
	if err != nil {
		return "", err
	}
	cacheKey := utils.AuthCachePrefix + uid
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), time.Hour).Err(); err != nil {
		return "", err
	}
	return token, nil
}
