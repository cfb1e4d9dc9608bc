package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hadir-app/hadir-api/internal/models"
)

// ErrNotFound is returned by repositories when a referenced record is
// absent, so use cases can distinguish it from storage failures.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Business --------
	GetBusiness(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateIfSlotFree inserts the booking only if no confirmed booking
	// intersects [windowStart, windowEnd) for the same business. The
	// check and the insert run inside one per-business critical
	// section, so concurrent requests for the same slot cannot both
	// succeed. Returns slot_unavailable when the window is taken.
	CreateIfSlotFree(
		ctx context.Context,
		b *models.Booking,
		windowStart time.Time,
		windowEnd time.Time,
	) error

	CountConfirmedOverlaps(
		ctx context.Context,
		businessID uuid.UUID,
		windowStart time.Time,
		windowEnd time.Time,
	) (int64, error)

	// -------- Booking (state change / listing) --------
	GetBooking(
		ctx context.Context,
		businessID uuid.UUID,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		businessID uuid.UUID,
	) ([]models.Booking, error)

	ListForPeriod(
		ctx context.Context,
		businessID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListConfirmedForRange(
		ctx context.Context,
		businessID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
