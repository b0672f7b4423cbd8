package handlers

import (
	"net/http"

	"homemate/services/notify"

	"github.com/gin-gonic/gin"
)

// NotificationHandler drains the one-shot notification queue for the UI.
type NotificationHandler struct {
	Notifier notify.Notifier
}

func NewNotificationHandler(notifier notify.Notifier) *NotificationHandler {
	return &NotificationHandler{Notifier: notifier}
}

// FlushNotificationsHandler handles GET /api/notifications. Each
// notification is delivered exactly once.
func (h *NotificationHandler) FlushNotificationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Notifier.Flush()})
}
