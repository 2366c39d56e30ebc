package provider

import (
	"strings"

	"github.com/localskill/marketplace-api/internal/models"
)

// Filter narrows a fully materialized provider list with a case-insensitive
// substring match over display name, tagline and bio. It always recomputes
// over the whole input, so filtering an already-filtered list by the same
// query returns the same set. An empty query returns the input unchanged.
func Filter(providers []models.Provider, query string) []models.Provider {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return providers
	}

	out := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Profile.FullName), q) ||
			strings.Contains(strings.ToLower(p.Tagline), q) ||
			strings.Contains(strings.ToLower(p.Bio), q) {
			out = append(out, p)
		}
	}

	return out
}
