package booking

import (
	"context"

	domain "github.com/localskill/marketplace-api/internal/domain/booking"
	"github.com/localskill/marketplace-api/internal/dto"
)

type ListBookingsForClient struct {
	repo domain.Repository
}

func NewListBookingsForClient(
	repo domain.Repository,
) *ListBookingsForClient {
	return &ListBookingsForClient{
		repo: repo,
	}
}

// Execute returns the client's bookings newest-start first, flattened for
// the dashboard.
func (uc *ListBookingsForClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:                b.ID,
			Reference:         b.Reference,
			StartTime:         b.StartTime,
			EndTime:           b.EndTime,
			Status:            b.Status,
			Amount:            b.Amount,
			Notes:             b.Notes,
			ServiceTitle:      b.Service.Title,
			ProviderName:      b.Provider.Profile.FullName,
			ProviderAvatarURL: b.Provider.Profile.AvatarURL,
		})
	}

	return out, nil
}
