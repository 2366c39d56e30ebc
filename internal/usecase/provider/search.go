package provider

import (
	"context"

	"github.com/localskill/marketplace-api/internal/cache"
	domain "github.com/localskill/marketplace-api/internal/domain/provider"
	"github.com/localskill/marketplace-api/internal/models"
)

// SearchProviders serves the provider feed: the full rating-ordered list
// from the cache (or the store on a miss), then the in-memory text filter.
// The filter deliberately runs over the materialized set rather than being
// pushed into the query; it recomputes per request.
type SearchProviders struct {
	repo  domain.Repository
	cache *cache.FeedCache
}

func NewSearchProviders(
	repo domain.Repository,
	cache *cache.FeedCache,
) *SearchProviders {
	return &SearchProviders{
		repo:  repo,
		cache: cache,
	}
}

func (uc *SearchProviders) Execute(
	ctx context.Context,
	query string,
) ([]models.Provider, error) {

	providers, ok := uc.cache.GetProviders(ctx)
	if !ok {
		var err error
		providers, err = uc.repo.ListProviders(ctx)
		if err != nil {
			return nil, err
		}
		uc.cache.SetProviders(ctx, providers)
	}

	return domain.Filter(providers, query), nil
}
