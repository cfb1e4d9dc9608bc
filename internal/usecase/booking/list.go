package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
	"github.com/hadir-app/hadir-api/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists a business's bookings ordered by start time. When date
// is non-zero the listing is restricted to that calendar day in the
// business's timezone.
func (uc *ListBookings) Execute(
	ctx context.Context,
	businessID uuid.UUID,
	date time.Time,
) ([]models.Booking, error) {

	biz, err := uc.repo.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("business_not_found")
		}
		return nil, err
	}

	if date.IsZero() {
		return uc.repo.ListBookings(ctx, businessID)
	}

	loc, err := timezone.Resolve(biz.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	return uc.repo.ListForPeriod(ctx, businessID, dayStart, dayEnd)
}
