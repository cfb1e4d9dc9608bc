package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
)

// Test fixture: a Dubai business open Wednesdays 09:00-17:00 with a
// 30-minute service. 2025-09-03 is a Wednesday; Dubai is UTC+4, so
// Wednesday 10:00 local is 06:00 UTC.

func fixture(t *testing.T, bufferMinutes int) (*fakeRepo, *CreateBooking, CreateBookingInput) {
	t.Helper()

	repo := newFakeRepo()

	biz := &models.Business{
		Base:     models.Base{ID: uuid.New()},
		Name:     "Hadir Salon",
		Timezone: "Asia/Dubai",
		WorkingHours: []models.WorkingHours{
			{Weekday: 2, StartTime: "09:00", EndTime: "17:00"},
		},
		BufferMinutes:     bufferMinutes,
		AcceptingBookings: true,
	}
	svc := &models.Service{
		Base:            models.Base{ID: uuid.New()},
		BusinessID:      biz.ID,
		DurationMinutes: 30,
	}
	cust := &models.Customer{
		Base:       models.Base{ID: uuid.New()},
		WhatsappID: "wa-1",
	}

	repo.businesses[biz.ID] = biz
	repo.services[svc.ID] = svc
	repo.customers[cust.ID] = cust

	uc := NewCreateBooking(repo, nil)

	in := CreateBookingInput{
		BusinessID: biz.ID,
		CustomerID: cust.ID,
		ServiceID:  svc.ID,
		StartTime:  time.Date(2025, 9, 3, 6, 0, 0, 0, time.UTC), // Wed 10:00 Dubai
		CreatedVia: domain.CreatedViaAdmin,
	}
	return repo, uc, in
}

func TestCreateBookingSucceeds(t *testing.T) {
	repo, uc, in := fixture(t, 0)

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if b.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
	if !b.EndTime.Equal(in.StartTime.Add(30 * time.Minute)) {
		t.Errorf("end_time = %s, want start+30m", b.EndTime)
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
}

func TestCreateBookingAdjacentSlotDoesNotConflict(t *testing.T) {
	_, uc, in := fixture(t, 0)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// [10:30, 11:00) touches the first booking's end exactly; half-open
	// intervals make this a legal slot.
	in.StartTime = time.Date(2025, 9, 3, 6, 30, 0, 0, time.UTC)
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("adjacent booking rejected: %v", err)
	}
}

func TestCreateBookingOverlapFails(t *testing.T) {
	repo, uc, in := fixture(t, 0)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// [10:29, 10:59) intersects [10:00, 10:30) by one minute.
	in.StartTime = time.Date(2025, 9, 3, 6, 29, 0, 0, time.UTC)
	_, err := uc.Execute(ctx, in)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("got %v, want slot_unavailable", err)
	}
	if repo.inserts != 1 {
		t.Errorf("conflicting request must not insert, inserts = %d", repo.inserts)
	}
}

func TestCreateBookingBufferBlocksNearbySlots(t *testing.T) {
	_, uc, in := fixture(t, 15)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// 10:30 start is adjacent but violates the 15-minute buffer.
	in.StartTime = time.Date(2025, 9, 3, 6, 30, 0, 0, time.UTC)
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("got %v, want slot_unavailable", err)
	}

	// 10:45 keeps the full buffer clear.
	in.StartTime = time.Date(2025, 9, 3, 6, 45, 0, 0, time.UTC)
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("buffered slot rejected: %v", err)
	}
}

func TestCreateBookingCancelledDoesNotBlock(t *testing.T) {
	repo, uc, in := fixture(t, 0)
	ctx := context.Background()

	b, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	b.Status = string(domain.StatusCancelled)
	if err := repo.UpdateBooking(ctx, b); err != nil {
		t.Fatal(err)
	}

	// The identical window is free again once the booking is cancelled.
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("cancelled booking still blocks: %v", err)
	}
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	repo, uc, in := fixture(t, 0)

	// Wednesday 18:00 local, after the 17:00 close.
	in.StartTime = time.Date(2025, 9, 3, 14, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("got %v, want outside_working_hours", err)
	}

	// Thursday has no slot at all.
	in.StartTime = time.Date(2025, 9, 4, 6, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("got %v, want outside_working_hours", err)
	}

	if repo.inserts != 0 {
		t.Errorf("failed requests must not insert, inserts = %d", repo.inserts)
	}
}

func TestCreateBookingUnknownReferences(t *testing.T) {
	repo, uc, in := fixture(t, 0)
	ctx := context.Background()

	bad := in
	bad.ServiceID = uuid.New()
	if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("got %v, want service_not_found", err)
	}

	bad = in
	bad.BusinessID = uuid.New()
	if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "business_not_found") {
		t.Errorf("got %v, want business_not_found", err)
	}

	bad = in
	bad.CustomerID = uuid.New()
	if _, err := uc.Execute(ctx, bad); !httperr.IsBusiness(err, "customer_not_found") {
		t.Errorf("got %v, want customer_not_found", err)
	}

	if repo.inserts != 0 {
		t.Errorf("failed requests must not insert, inserts = %d", repo.inserts)
	}
}

func TestCreateBookingFailureIsIdempotent(t *testing.T) {
	repo, uc, in := fixture(t, 0)
	ctx := context.Background()

	in.StartTime = time.Date(2025, 9, 3, 14, 0, 0, 0, time.UTC) // 18:00 local

	for i := 0; i < 3; i++ {
		if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "outside_working_hours") {
			t.Fatalf("attempt %d: got %v", i, err)
		}
	}
	if repo.inserts != 0 || len(repo.bookings) != 0 {
		t.Error("repeated failed requests left records behind")
	}
}

func TestCreateBookingRejectsClosedBusinessAndBadTimezone(t *testing.T) {
	repo, uc, in := fixture(t, 0)
	ctx := context.Background()

	repo.businesses[in.BusinessID].AcceptingBookings = false
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "not_accepting_bookings") {
		t.Errorf("got %v, want not_accepting_bookings", err)
	}

	repo.businesses[in.BusinessID].AcceptingBookings = true
	repo.businesses[in.BusinessID].Timezone = "Mars/Olympus"
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "invalid_timezone") {
		t.Errorf("got %v, want invalid_timezone", err)
	}
}
