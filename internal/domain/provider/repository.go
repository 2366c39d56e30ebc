package provider

import (
	"context"

	"github.com/localskill/marketplace-api/internal/models"
)

type Repository interface {
	// ListProviders returns every listed provider with profile and service
	// summaries, ordered by rating descending (stable ties).
	ListProviders(ctx context.Context) ([]models.Provider, error)

	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	ListActiveServices(
		ctx context.Context,
		providerID uint,
	) ([]models.ProviderService, error)

	ListReviews(
		ctx context.Context,
		providerID uint,
	) ([]models.Review, error)
}
