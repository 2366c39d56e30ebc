package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/middleware"
	"github.com/localskill/marketplace-api/internal/models"
)

// ProviderAccountHandler serves the authenticated provider's own listing,
// as opposed to the public profile endpoints.
type ProviderAccountHandler struct {
	db *gorm.DB
}

func NewProviderAccountHandler(db *gorm.DB) *ProviderAccountHandler {
	return &ProviderAccountHandler{db: db}
}

type UpdateProviderRequest struct {
	Tagline         *string   `json:"tagline"`
	Bio             *string   `json:"bio"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ServiceRadiusKm *int      `json:"service_radius_km"`
	YearsExperience *int      `json:"years_experience"`
	Languages       *[]string `json:"languages"`
}

func (h *ProviderAccountHandler) GetMeProvider(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	if providerID == 0 {
		httperr.Forbidden(c, "not_a_provider", "This account has no provider listing.")
		return
	}

	var provider models.Provider
	if err := h.db.Preload("Profile").First(&provider, providerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "provider_not_found", "Provider listing not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_provider", "Failed to load the provider listing.")
		return
	}

	c.JSON(http.StatusOK, provider)
}

func (h *ProviderAccountHandler) UpdateMeProvider(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	if providerID == 0 {
		httperr.Forbidden(c, "not_a_provider", "This account has no provider listing.")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, providerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "provider_not_found", "Provider listing not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_provider", "Failed to load the provider listing.")
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data in the request.")
		return
	}

	if req.Tagline != nil {
		provider.Tagline = *req.Tagline
	}

	if req.Bio != nil {
		provider.Bio = *req.Bio
	}

	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Hourly rate must be zero or positive.")
			return
		}
		provider.HourlyRate = *req.HourlyRate
	}

	if req.ServiceRadiusKm != nil {
		if *req.ServiceRadiusKm <= 0 {
			httperr.BadRequest(c, "invalid_service_radius", "Service radius must be positive (in km).")
			return
		}
		provider.ServiceRadiusKm = *req.ServiceRadiusKm
	}

	if req.YearsExperience != nil {
		if *req.YearsExperience < 0 {
			httperr.BadRequest(c, "invalid_years_experience", "Years of experience must be zero or positive.")
			return
		}
		provider.YearsExperience = *req.YearsExperience
	}

	if req.Languages != nil {
		provider.Languages = *req.Languages
	}

	if err := h.db.Save(&provider).Error; err != nil {
		httperr.Internal(c, "failed_to_update_provider", "Failed to save the provider listing.")
		return
	}

	c.JSON(http.StatusOK, provider)
}
