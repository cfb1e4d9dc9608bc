package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hadir-app/hadir-api/internal/audit"
	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
	"github.com/hadir-app/hadir-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BusinessID uuid.UUID
	CustomerID uuid.UUID
	ServiceID  uuid.UUID

	// UTC instant; values without an offset are taken as UTC.
	StartTime time.Time

	CreatedVia string
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

// Execute validates and commits one booking. Every step short-circuits;
// nothing is written until every check has passed, and the final
// conflict check runs inside the repository's per-business critical
// section together with the insert.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Business
	// --------------------------------------------------
	biz, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("business_not_found")
		}
		return nil, err
	}

	if !biz.AcceptingBookings {
		return nil, httperr.ErrBusiness("not_accepting_bookings")
	}

	// --------------------------------------------------
	// 2. Service duration
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3. Customer
	// --------------------------------------------------
	if _, err := uc.repo.GetCustomer(ctx, in.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Local window
	// --------------------------------------------------
	loc, err := timezone.Resolve(biz.Timezone)
	if err != nil {
		// Validated at business creation; rejected again here in case a
		// stored record predates that validation.
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	start := in.StartTime.UTC()
	duration := time.Duration(svc.DurationMinutes) * time.Minute
	end := start.Add(duration)

	startLocal := timezone.ToLocal(start, loc)
	endLocal := startLocal.Add(duration)

	// --------------------------------------------------
	// 5. Working hours
	// --------------------------------------------------
	if !domain.WithinWorkingHours(startLocal, endLocal, biz.WorkingHours) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 6. Conflict check + insert (serialized per business)
	// --------------------------------------------------
	windowStart, windowEnd := domain.PadWindow(start, end, biz.BufferMinutes)

	b := &models.Booking{
		BusinessID: in.BusinessID,
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		CreatedVia: in.CreatedVia,
	}

	if err := uc.repo.CreateIfSlotFree(ctx, b, windowStart, windowEnd); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
