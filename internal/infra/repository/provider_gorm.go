package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/localskill/marketplace-api/internal/domain/provider"
	"github.com/localskill/marketplace-api/internal/models"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

// --------------------------------------------------
// Feed
// --------------------------------------------------

func (r *ProviderGormRepository) ListProviders(
	ctx context.Context,
) ([]models.Provider, error) {

	var providers []models.Provider
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Services", "is_active = true").
		Order("rating DESC, id ASC").
		Find(&providers).Error; err != nil {
		return nil, &domain.QueryError{Op: "list providers", Err: err}
	}

	return providers, nil
}

// --------------------------------------------------
// Profile page
// --------------------------------------------------

func (r *ProviderGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&p, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, &domain.QueryError{Op: "get provider", Err: err}
	}

	return &p, nil
}

func (r *ProviderGormRepository) ListActiveServices(
	ctx context.Context,
	providerID uint,
) ([]models.ProviderService, error) {

	var services []models.ProviderService
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND is_active = true", providerID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, &domain.QueryError{Op: "list services", Err: err}
	}

	return services, nil
}

func (r *ProviderGormRepository) ListReviews(
	ctx context.Context,
	providerID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, &domain.QueryError{Op: "list reviews", Err: err}
	}

	return reviews, nil
}

// Compile-time check
var _ domain.Repository = (*ProviderGormRepository)(nil)
