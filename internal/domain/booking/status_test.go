package booking

import (
	"testing"
	"time"

	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/models"
)

func TestTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		check   func(Status) error
		allowed bool
	}{
		{"confirm pending", StatusPending, CanConfirm, true},
		{"confirm confirmed", StatusConfirmed, CanConfirm, false},
		{"confirm completed", StatusCompleted, CanConfirm, false},
		{"confirm cancelled", StatusCancelled, CanConfirm, false},

		{"cancel pending", StatusPending, CanCancel, true},
		{"cancel confirmed", StatusConfirmed, CanCancel, true},
		{"cancel completed", StatusCompleted, CanCancel, false},
		{"cancel cancelled", StatusCancelled, CanCancel, false},

		{"complete confirmed", StatusConfirmed, CanComplete, true},
		{"complete pending", StatusPending, CanComplete, false},
		{"complete completed", StatusCompleted, CanComplete, false},
		{"complete cancelled", StatusCancelled, CanComplete, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)

			if tc.allowed && err != nil {
				t.Fatalf("expected transition to be allowed, got %v", err)
			}

			if !tc.allowed && !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("expected invalid_state, got %v", err)
			}
		})
	}
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("confirm stamps status and timestamp", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}

		if err := Confirm(b, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != string(StatusConfirmed) {
			t.Fatalf("status not updated: %s", b.Status)
		}
		if b.ConfirmedAt == nil || !b.ConfirmedAt.Equal(now) {
			t.Fatalf("confirmed_at not stamped: %v", b.ConfirmedAt)
		}
	})

	t.Run("complete requires a confirmed booking", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}

		if err := Complete(b, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
		if b.Status != string(StatusPending) || b.CompletedAt != nil {
			t.Fatalf("booking mutated on a rejected transition: %+v", b)
		}
	})

	t.Run("cancel works from confirmed", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}

		if err := Cancel(b, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != string(StatusCancelled) || b.CancelledAt == nil {
			t.Fatalf("cancel did not stamp the booking: %+v", b)
		}
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCancelled)}

		if err := Confirm(b, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state, got %v", err)
		}
	})
}
