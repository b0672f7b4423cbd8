package handlers

import (
	"net/http"
	"time"

	"homemate/models"
	svcbooking "homemate/services/booking"
	"homemate/services/remote"
	"homemate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking screens: confirm from the detail page,
// list mine, delete mine.
type BookingHandler struct {
	Invoker remote.Invoker
}

func NewBookingHandler(invoker remote.Invoker) *BookingHandler {
	return &BookingHandler{Invoker: invoker}
}

// ConfirmBookingHandler handles POST /api/bookings/confirm. It resolves the
// listing, snapshots it together with the acting user's identity and the
// current time, and sends the booking to the backend.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user := actingUser(c)
	listing, err := h.Invoker.GetService(c.Request.Context(), req.ServiceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	snapshot := svcbooking.BuildBooking(user, *listing, time.Now())
	created, err := h.Invoker.CreateBooking(c.Request.Context(), snapshot)
	if err != nil {
		logger.Error("Booking confirmation failed", zap.String("serviceId", req.ServiceID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to confirm booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": created, "redirect": "/my-bookings"})
}

// MyBookingsHandler handles GET /api/bookings: the signed-in user's
// bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	email := c.GetString("userEmail")
	booked, err := h.Invoker.MyBookings(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, booked)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id. Only the booking
// owner may delete it.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	email := c.GetString("userEmail")

	booked, err := h.Invoker.MyBookings(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	owned := false
	for _, b := range booked {
		if b.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		logger.Warn("Booking delete refused for non-owner",
			zap.String("id", id), zap.String("email", email))
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the booking owner can delete this booking"})
		return
	}

	if err := h.Invoker.DeleteBooking(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// actingUser builds the acting user's identity from the request context set
// by the session gate.
func actingUser(c *gin.Context) models.UserProfile {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*models.UserProfile); ok && u != nil {
			return *u
		}
	}
	return models.UserProfile{
		UID:   c.GetString("userID"),
		Email: c.GetString("userEmail"),
	}
}
