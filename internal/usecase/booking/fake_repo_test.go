package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. Its
// CreateIfSlotFree mirrors the production semantics: the confirmed
// overlap check and the insert happen atomically.
type fakeRepo struct {
	businesses map[uuid.UUID]*models.Business
	services   map[uuid.UUID]*models.Service
	customers  map[uuid.UUID]*models.Customer
	bookings   []models.Booking

	inserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		businesses: map[uuid.UUID]*models.Business{},
		services:   map[uuid.UUID]*models.Service{},
		customers:  map[uuid.UUID]*models.Customer{},
	}
}

func (f *fakeRepo) GetBusiness(_ context.Context, id uuid.UUID) (*models.Business, error) {
	if biz, ok := f.businesses[id]; ok {
		return biz, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetService(_ context.Context, businessID, serviceID uuid.UUID) (*models.Service, error) {
	if svc, ok := f.services[serviceID]; ok && svc.BusinessID == businessID {
		return svc, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetCustomer(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if cust, ok := f.customers[id]; ok {
		return cust, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) CountConfirmedOverlaps(_ context.Context, businessID uuid.UUID, windowStart, windowEnd time.Time) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.BusinessID != businessID || !domain.Status(b.Status).Blocks() {
			continue
		}
		if domain.Overlaps(windowStart, windowEnd, b.StartTime, b.EndTime) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateIfSlotFree(ctx context.Context, b *models.Booking, windowStart, windowEnd time.Time) error {
	count, _ := f.CountConfirmedOverlaps(ctx, b.BusinessID, windowStart, windowEnd)
	if count > 0 {
		return httperr.ErrBusiness("slot_unavailable")
	}
	b.ID = uuid.New()
	f.bookings = append(f.bookings, *b)
	f.inserts++
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, businessID, bookingID uuid.UUID) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID && f.bookings[i].BusinessID == businessID {
			return &f.bookings[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRepo) ListBookings(_ context.Context, businessID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID == businessID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, businessID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID == businessID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedForRange(_ context.Context, businessID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID != businessID || !domain.Status(b.Status).Blocks() {
			continue
		}
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
