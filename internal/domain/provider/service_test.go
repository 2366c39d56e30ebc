package provider

import (
	"testing"

	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/models"
)

func TestValidateServiceTerms(t *testing.T) {
	t.Run("fixed price needs no duration", func(t *testing.T) {
		if err := ValidateServiceTerms(models.PriceTypeFixed, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("hourly price requires a positive duration", func(t *testing.T) {
		if err := ValidateServiceTerms(models.PriceTypeHourly, 0); !httperr.IsBusiness(err, "duration_required") {
			t.Fatalf("expected duration_required, got %v", err)
		}
		if err := ValidateServiceTerms(models.PriceTypeHourly, 120); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("daily price requires a positive duration", func(t *testing.T) {
		if err := ValidateServiceTerms(models.PriceTypeDaily, 0); !httperr.IsBusiness(err, "duration_required") {
			t.Fatalf("expected duration_required, got %v", err)
		}
	})

	t.Run("unknown price type is rejected", func(t *testing.T) {
		if err := ValidateServiceTerms("per_project", 60); !httperr.IsBusiness(err, "invalid_price_type") {
			t.Fatalf("expected invalid_price_type, got %v", err)
		}
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		if err := ValidateServiceTerms(models.PriceTypeFixed, -30); !httperr.IsBusiness(err, "invalid_duration") {
			t.Fatalf("expected invalid_duration, got %v", err)
		}
	})
}
