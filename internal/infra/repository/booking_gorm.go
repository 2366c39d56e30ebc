package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/localskill/marketplace-api/internal/domain/booking"
	"github.com/localskill/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Provider / Service lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) GetServiceForProvider(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.ProviderService, error) {

	var svc models.ProviderService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return &domain.PersistenceError{Op: "create booking", Err: err}
	}
	return nil
}

// --------------------------------------------------
// Booking (confirm / complete / cancel)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForProvider(
	ctx context.Context,
	bookingID uint,
	providerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return &domain.PersistenceError{Op: "update booking", Err: err}
	}
	return nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Provider.Profile").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
