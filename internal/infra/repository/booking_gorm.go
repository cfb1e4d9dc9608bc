package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/cache"
	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/models"
)

type BookingGormRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewBookingGormRepository(db *gorm.DB, c *cache.Cache) *BookingGormRepository {
	return &BookingGormRepository{db: db, cache: c}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) GetBusiness(
	ctx context.Context,
	id uuid.UUID,
) (*models.Business, error) {

	if biz, ok := r.cache.GetBusiness(ctx, id); ok {
		return biz, nil
	}

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&biz, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	r.cache.SetBusiness(ctx, &biz)
	return &biz, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	id uuid.UUID,
) (*models.Customer, error) {

	var cust models.Customer
	if err := r.db.WithContext(ctx).
		First(&cust, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &cust, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CountConfirmedOverlaps(
	ctx context.Context,
	businessID uuid.UUID,
	windowStart time.Time,
	windowEnd time.Time,
) (int64, error) {
	return countConfirmedOverlaps(r.db.WithContext(ctx), businessID, windowStart, windowEnd)
}

func countConfirmedOverlaps(
	tx *gorm.DB,
	businessID uuid.UUID,
	windowStart time.Time,
	windowEnd time.Time,
) (int64, error) {

	var count int64
	err := tx.
		Model(&models.Booking{}).
		Where(
			"business_id = ? AND status = 'confirmed' AND start_time < ? AND end_time > ?",
			businessID,
			windowEnd,
			windowStart,
		).
		Count(&count).Error
	return count, err
}

// CreateIfSlotFree serializes the overlap check and the insert per
// business with a transaction-scoped advisory lock, so two concurrent
// requests for intersecting windows cannot both pass the check.
func (r *BookingGormRepository) CreateIfSlotFree(
	ctx context.Context,
	b *models.Booking,
	windowStart time.Time,
	windowEnd time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			b.BusinessID.String(),
		).Error; err != nil {
			return err
		}

		count, err := countConfirmedOverlaps(tx, b.BusinessID, windowStart, windowEnd)
		if err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change / listing)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	businessID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", bookingID, businessID).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	businessID uuid.UUID,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListForPeriod(
	ctx context.Context,
	businessID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListConfirmedForRange(
	ctx context.Context,
	businessID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"business_id = ? AND status = 'confirmed' AND start_time < ? AND end_time > ?",
			businessID, end, start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
