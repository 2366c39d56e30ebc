package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/localskill/marketplace-api/internal/audit"
	domain "github.com/localskill/marketplace-api/internal/domain/booking"
	"github.com/localskill/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID   uint
	ProviderID uint
	ServiceID  uint

	// RFC 3339 instant, offset preserved end to end.
	StartTime string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Identity + start time (pure checks, no reads)
	// --------------------------------------------------
	req, err := domain.ParseRequest(
		in.ClientID,
		in.ProviderID,
		in.ServiceID,
		in.StartTime,
		in.Notes,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Provider
	// --------------------------------------------------
	if _, err := uc.repo.GetProviderByID(ctx, req.ProviderID); err != nil {
		return nil, domain.ErrValidation("provider_not_found")
	}

	// --------------------------------------------------
	// 3. Service (must be active and belong to the provider)
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceForProvider(ctx, req.ProviderID, req.ServiceID)
	if err != nil {
		return nil, domain.ErrValidation("service_not_found")
	}

	if err := domain.ValidateService(req, svc); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Time window (service duration, default 60 min)
	// --------------------------------------------------
	window := domain.Window(req.StartTime, svc.DurationMinutes)

	// --------------------------------------------------
	// 5. Persist with the initial status and a price snapshot.
	//    Nothing dedupes concurrent submissions for the same slot;
	//    both writes go through.
	// --------------------------------------------------
	b := &models.Booking{
		Reference:  uuid.New(),
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		ServiceID:  svc.ID,
		StartTime:  window.Start,
		EndTime:    window.End,
		Amount:     svc.BasePrice,
		Notes:      req.Notes,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit (async, best effort)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProviderID: req.ProviderID,
		ActorID:    &req.ClientID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
