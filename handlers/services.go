package handlers

import (
	"net/http"

	"homemate/models"
	"homemate/services/remote"
	"homemate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service catalog screens.
type ServiceHandler struct {
	Invoker remote.Invoker
}

func NewServiceHandler(invoker remote.Invoker) *ServiceHandler {
	return &ServiceHandler{Invoker: invoker}
}

// ListServicesHandler handles GET /api/services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	services, err := h.Invoker.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id. The detail screen cannot
// render without the listing, so a failed fetch fails the screen.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	listing, err := h.Invoker.GetService(c.Request.Context(), id)
	if err != nil {
		logger.Error("Service not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// SearchServicesHandler handles POST /api/services/search.
func (h *ServiceHandler) SearchServicesHandler(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	services, err := h.Invoker.SearchServices(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to search services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// FilterServicesHandler handles POST /api/services/filter.
func (h *ServiceHandler) FilterServicesHandler(c *gin.Context) {
	var req struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	services, err := h.Invoker.FilterServicesByPrice(c.Request.Context(), req.Min, req.Max)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to filter services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// MyServicesHandler handles GET /api/my-services: the signed-in provider's
// own listings, matched by email.
func (h *ServiceHandler) MyServicesHandler(c *gin.Context) {
	email := c.GetString("userEmail")
	services, err := h.Invoker.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch services"})
		return
	}
	mine := make([]models.ServiceListing, 0)
	for _, svc := range services {
		if svc.ProviderEmail == email {
			mine = append(mine, svc)
		}
	}
	c.JSON(http.StatusOK, mine)
}

// DeleteServiceHandler handles DELETE /api/services/:id. Only the provider
// who created the listing may delete it.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	email := c.GetString("userEmail")

	listing, err := h.Invoker.GetService(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if listing.ProviderEmail != email {
		logger.Warn("Delete refused for non-owner",
			zap.String("id", id), zap.String("email", email))
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owning provider can delete this service"})
		return
	}

	if err := h.Invoker.DeleteService(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
