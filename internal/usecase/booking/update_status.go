package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hadir-app/hadir-api/internal/audit"
	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	businessID uuid.UUID,
	bookingID uuid.UUID,
	status domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, businessID, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(b.Status), status); err != nil {
		return nil, err
	}

	b.Status = string(status)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "booking_status_changed",
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata:   map[string]string{"status": string(status)},
	})

	return b, nil
}
