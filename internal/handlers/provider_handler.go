package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/localskill/marketplace-api/internal/domain/provider"
	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/httpresp"
	"github.com/localskill/marketplace-api/internal/models"
	ucProvider "github.com/localskill/marketplace-api/internal/usecase/provider"
)

// ======================================================
// HANDLER
// ======================================================

type ProviderHandler struct {
	repo   domain.Repository
	search *ucProvider.SearchProviders
}

func NewProviderHandler(
	repo domain.Repository,
	search *ucProvider.SearchProviders,
) *ProviderHandler {
	return &ProviderHandler{
		repo:   repo,
		search: search,
	}
}

// ======================================================
// SEARCH PAGE
// ======================================================

// Search serves the provider feed. Read failures degrade to an empty list
// with a logged diagnostic; the page renders, just empty.
func (h *ProviderHandler) Search(c *gin.Context) {
	query := c.Query("q")

	providers, err := h.search.Execute(c.Request.Context(), query)
	if err != nil {
		log.Println("provider search failed:", err)
		httpresp.List(c, []models.Provider{})
		return
	}

	httpresp.List(c, providers)
}

// ======================================================
// PROFILE PAGE
// ======================================================

func (h *ProviderHandler) GetProfile(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider identifier.")
		return
	}

	p, err := h.repo.GetProviderByID(c.Request.Context(), id)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Println("provider lookup failed:", err)
		}
		httperr.NotFound(c, "provider_not_found", "Provider not found.")
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) ListServices(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider identifier.")
		return
	}

	services, err := h.repo.ListActiveServices(c.Request.Context(), id)
	if err != nil {
		log.Println("service listing failed:", err)
		httpresp.List(c, []models.ProviderService{})
		return
	}

	httpresp.List(c, services)
}

func (h *ProviderHandler) ListReviews(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_provider_id", "Invalid provider identifier.")
		return
	}

	reviews, err := h.repo.ListReviews(c.Request.Context(), id)
	if err != nil {
		log.Println("review listing failed:", err)
		httpresp.List(c, []models.Review{})
		return
	}

	httpresp.List(c, reviews)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
