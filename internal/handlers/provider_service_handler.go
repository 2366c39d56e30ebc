package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localskill/marketplace-api/internal/audit"
	domain "github.com/localskill/marketplace-api/internal/domain/provider"
	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/httpresp"
	"github.com/localskill/marketplace-api/internal/middleware"
	"github.com/localskill/marketplace-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// ProviderServiceHandler manages the authenticated provider's own service
// catalogue. The public, active-only view lives on the provider profile
// endpoints; this one also shows deactivated entries.
type ProviderServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProviderServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ProviderServiceHandler {
	return &ProviderServiceHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Title           string  `json:"title" binding:"required,max=100"`
	Description     string  `json:"description" binding:"max=500"`
	BasePrice       float64 `json:"base_price" binding:"required,gt=0"`
	PriceType       string  `json:"price_type" binding:"required"`
	DurationMinutes int     `json:"duration_minutes"`
}

type UpdateServiceRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	BasePrice       *float64 `json:"base_price"`
	PriceType       *string  `json:"price_type"`
	DurationMinutes *int     `json:"duration_minutes"`
	IsActive        *bool    `json:"is_active"`
}

// ======================================================
// LIST (INCLUDES INACTIVE)
// ======================================================

func (h *ProviderServiceHandler) List(c *gin.Context) {
	providerID, ok := requireProvider(c)
	if !ok {
		return
	}

	var services []models.ProviderService
	if err := h.db.
		Where("provider_id = ?", providerID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProviderServiceHandler) Create(c *gin.Context) {
	providerID, ok := requireProvider(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data in the request.")
		return
	}

	if err := domain.ValidateServiceTerms(req.PriceType, req.DurationMinutes); err != nil {
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, "Service terms rejected.")
		return
	}

	svc := models.ProviderService{
		ProviderID:      providerID,
		Title:           req.Title,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		PriceType:       req.PriceType,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create the service.")
		return
	}

	actorID := c.MustGet(middleware.ContextProfileID).(uint)
	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		ActorID:    &actorID,
		Action:     "service_created",
		Entity:     "provider_service",
		EntityID:   &svc.ID,
	})

	c.JSON(http.StatusCreated, svc)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProviderServiceHandler) Update(c *gin.Context) {
	providerID, ok := requireProvider(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service identifier.")
		return
	}

	var svc models.ProviderService
	if err := h.db.
		Where("id = ? AND provider_id = ?", uint(id), providerID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to load the service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data in the request.")
		return
	}

	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > 100 {
			httperr.BadRequest(c, "invalid_title", "Title must have between 1 and 100 characters.")
			return
		}
		svc.Title = *req.Title
	}

	if req.Description != nil {
		if len(*req.Description) > 500 {
			httperr.BadRequest(c, "invalid_description", "Description must have at most 500 characters.")
			return
		}
		svc.Description = *req.Description
	}

	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			httperr.BadRequest(c, "invalid_base_price", "Base price must be positive.")
			return
		}
		svc.BasePrice = *req.BasePrice
	}

	priceType := svc.PriceType
	if req.PriceType != nil {
		priceType = *req.PriceType
	}

	duration := svc.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	if err := domain.ValidateServiceTerms(priceType, duration); err != nil {
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, "Service terms rejected.")
		return
	}

	svc.PriceType = priceType
	svc.DurationMinutes = duration

	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to save the service.")
		return
	}

	actorID := c.MustGet(middleware.ContextProfileID).(uint)
	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		ActorID:    &actorID,
		Action:     "service_updated",
		Entity:     "provider_service",
		EntityID:   &svc.ID,
	})

	c.JSON(http.StatusOK, svc)
}

// ======================================================
// HELPERS
// ======================================================

func requireProvider(c *gin.Context) (uint, bool) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	if providerID == 0 {
		httperr.Forbidden(c, "not_a_provider", "This account has no provider listing.")
		return 0, false
	}
	return providerID, true
}
