package routes

import (
	"net/http"
	"time"

	"homemate/handlers"
	"homemate/middleware"
	"homemate/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFormRoutes registers the form session endpoints. The auth screens
// (login, register, forgot) run through these without a session gate.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forms")
	{
		api.POST("/start/:screen", hb.StartFormHandler)
		api.PATCH("/session/:sessionID/field", hb.SetFormFieldHandler)
		api.POST("/session/:sessionID/submit", hb.SubmitFormHandler)
	}
}

// RegisterAuthRoutes registers federated sign-in, sign-out and profile.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gate *session.Gate) {
	api := r.Group("/api/auth")
	{
		api.POST("/google", hb.GoogleSignInHandler)

		// Protected routes (require a settled, signed-in session).
		protected := api.Group("")
		protected.Use(middleware.SessionGateMiddleware(gate))
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/profile", hb.GetProfileHandler)
		protected.PATCH("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterServiceRoutes registers the catalog endpoints. Browsing is public;
// a provider's own listings and deletions require authentication.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gate *session.Gate) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
		api.POST("/search", hb.SearchServicesHandler)
		api.POST("/filter", hb.FilterServicesHandler)

		protected := api.Group("")
		protected.Use(middleware.SessionGateMiddleware(gate))
		protected.DELETE("/:id", hb.DeleteServiceHandler)
	}

	mine := r.Group("/api/my-services")
	{
		mine.Use(middleware.SessionGateMiddleware(gate))
		mine.GET("", hb.MyServicesHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints; all require a
// signed-in user.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gate *session.Gate) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionGateMiddleware(gate))
		api.POST("/confirm", hb.ConfirmBookingHandler)
		api.GET("", hb.MyBookingsHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterNotificationRoute registers the one-shot notification drain.
func RegisterNotificationRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/notifications", hb.FlushNotificationsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HomeMate"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gate *session.Gate) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFormRoutes(r, hb)
	RegisterAuthRoutes(r, hb, gate)
	RegisterServiceRoutes(r, hb, gate)
	RegisterBookingRoutes(r, hb, gate)
	RegisterNotificationRoute(r, hb)
	RegisterHealthRoute(r)
}
