package booking

import (
	"strings"
	"time"

	"github.com/localskill/marketplace-api/internal/models"
)

// Request is a normalized booking submission. It only exists after the
// identity and start-time checks have passed.
type Request struct {
	ClientID   uint
	ProviderID uint
	ServiceID  uint
	StartTime  time.Time
	Notes      string
}

// ParseRequest checks that the caller is authenticated, the selection is
// complete and the start time parses as an RFC 3339 instant. Pure check,
// no side effects.
func ParseRequest(
	clientID uint,
	providerID uint,
	serviceID uint,
	rawStartTime string,
	notes string,
) (Request, error) {

	if clientID == 0 {
		return Request{}, ErrValidation("not_authenticated")
	}

	if providerID == 0 {
		return Request{}, ErrValidation("provider_required")
	}

	if serviceID == 0 {
		return Request{}, ErrValidation("service_required")
	}

	start, err := time.Parse(time.RFC3339, strings.TrimSpace(rawStartTime))
	if err != nil {
		return Request{}, ErrValidation("invalid_start_time")
	}

	return Request{
		ClientID:   clientID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		StartTime:  start,
		Notes:      strings.TrimSpace(notes),
	}, nil
}

// ValidateService ensures the resolved service is bookable for the provider
// named in the request.
func ValidateService(req Request, svc *models.ProviderService) error {
	if svc == nil || svc.ProviderID != req.ProviderID {
		return ErrValidation("service_not_found")
	}

	if !svc.IsActive {
		return ErrValidation("service_inactive")
	}

	return nil
}
