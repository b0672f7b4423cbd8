package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Form endpoints (login, register, forgot, add/edit service, review).
	StartFormHandler    gin.HandlerFunc
	SetFormFieldHandler gin.HandlerFunc
	SubmitFormHandler   gin.HandlerFunc

	// Auth endpoints.
	GoogleSignInHandler  gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Service catalog endpoints.
	ListServicesHandler   gin.HandlerFunc
	GetServiceHandler     gin.HandlerFunc
	SearchServicesHandler gin.HandlerFunc
	FilterServicesHandler gin.HandlerFunc
	MyServicesHandler     gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc

	// Booking endpoints.
	ConfirmBookingHandler gin.HandlerFunc
	MyBookingsHandler     gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	// Notification endpoint.
	FlushNotificationsHandler gin.HandlerFunc
}
