package booking

import (
	"context"
	"errors"
	"testing"

	domain "github.com/localskill/marketplace-api/internal/domain/booking"
	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/models"
)

func seedBooking(f *fakeRepo, status domain.Status) *models.Booking {
	f.nextID++
	b := &models.Booking{
		ID:         f.nextID,
		ClientID:   1,
		ProviderID: 10,
		ServiceID:  20,
		Status:     string(status),
	}
	f.bookings = append(f.bookings, b)
	return b
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking becomes confirmed", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusPending)
		uc := NewConfirmBooking(repo, testDispatcher())

		out, err := uc.Execute(ctx, 10, 2, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Status != string(domain.StatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", out.Status)
		}
		if out.ConfirmedAt == nil {
			t.Fatal("confirmed_at not stamped")
		}
	})

	t.Run("confirming twice is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusConfirmed)
		uc := NewConfirmBooking(repo, testDispatcher())

		_, err := uc.Execute(ctx, 10, 2, b.ID)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
	})

	t.Run("another provider's booking reads as missing", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusPending)
		uc := NewConfirmBooking(repo, testDispatcher())

		_, err := uc.Execute(ctx, 99, 2, b.ID)
		if !httperr.IsBusiness(err, "booking_not_found") {
			t.Fatalf("expected booking_not_found, got %v", err)
		}
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking becomes completed", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusConfirmed)
		uc := NewCompleteBooking(repo, testDispatcher())

		out, err := uc.Execute(ctx, 10, 2, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != string(domain.StatusCompleted) || out.CompletedAt == nil {
			t.Fatalf("completion not stamped: %+v", out)
		}
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusPending)
		uc := NewCompleteBooking(repo, testDispatcher())

		_, err := uc.Execute(ctx, 10, 2, b.ID)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("pending and confirmed bookings can be cancelled", func(t *testing.T) {
		for _, status := range []domain.Status{domain.StatusPending, domain.StatusConfirmed} {
			repo := newFakeRepo()
			b := seedBooking(repo, status)
			uc := NewCancelBooking(repo, testDispatcher())

			out, err := uc.Execute(ctx, 10, 2, b.ID)
			if err != nil {
				t.Fatalf("cancel from %s failed: %v", status, err)
			}
			if out.Status != string(domain.StatusCancelled) || out.CancelledAt == nil {
				t.Fatalf("cancel not stamped from %s: %+v", status, out)
			}
		}
	})

	t.Run("completed booking stays completed", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusCompleted)
		uc := NewCancelBooking(repo, testDispatcher())

		_, err := uc.Execute(ctx, 10, 2, b.ID)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
		if b.Status != string(domain.StatusCompleted) {
			t.Fatalf("booking mutated: %s", b.Status)
		}
	})

	t.Run("failed update surfaces", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(repo, domain.StatusPending)
		repo.updateErr = &domain.PersistenceError{Op: "update booking", Err: errors.New("connection reset")}
		uc := NewCancelBooking(repo, testDispatcher())

		_, err := uc.Execute(ctx, 10, 2, b.ID)
		if !domain.IsPersistence(err) {
			t.Fatalf("expected a persistence error, got %v", err)
		}
	})
}
