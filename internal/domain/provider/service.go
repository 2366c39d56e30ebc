package provider

import (
	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/models"
)

// ===============================
// Service catalogue rules
// ===============================

func ValidPriceType(priceType string) bool {
	switch priceType {
	case models.PriceTypeHourly, models.PriceTypeFixed, models.PriceTypeDaily:
		return true
	}
	return false
}

// ValidateServiceTerms enforces the catalogue invariant: time-based pricing
// (hourly/daily) needs a positive duration.
func ValidateServiceTerms(priceType string, durationMinutes int) error {
	if !ValidPriceType(priceType) {
		return httperr.ErrBusiness("invalid_price_type")
	}

	if (priceType == models.PriceTypeHourly || priceType == models.PriceTypeDaily) &&
		durationMinutes <= 0 {
		return httperr.ErrBusiness("duration_required")
	}

	if durationMinutes < 0 {
		return httperr.ErrBusiness("invalid_duration")
	}

	return nil
}
