package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
)

func TestUpdateBookingStatus(t *testing.T) {
	repo, createUC, in := fixture(t, 0)
	ctx := context.Background()

	b, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatal(err)
	}

	uc := NewUpdateBookingStatus(repo, nil)

	updated, err := uc.Execute(ctx, in.BusinessID, b.ID, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if updated.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s", updated.Status)
	}

	// Terminal bookings never change again.
	_, err = uc.Execute(ctx, in.BusinessID, b.ID, domain.StatusCompleted)
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("got %v, want invalid_status_transition", err)
	}
}

func TestUpdateBookingStatusUnknownBooking(t *testing.T) {
	repo, _, in := fixture(t, 0)

	uc := NewUpdateBookingStatus(repo, nil)
	_, err := uc.Execute(context.Background(), in.BusinessID, uuid.New(), domain.StatusCancelled)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("got %v, want booking_not_found", err)
	}
}
