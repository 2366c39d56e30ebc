package booking

import (
	"context"

	"github.com/localskill/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Provider / Service lookups --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetServiceForProvider(
		ctx context.Context,
		providerID uint,
		serviceID uint,
	) (*models.ProviderService, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		providerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Dashboard --------
	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)
}
