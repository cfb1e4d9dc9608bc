package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/timezone"
)

type AvailabilityInput struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the free slots of one calendar day, stepping through
// the weekday's working hours by service duration and skipping anything
// within buffer distance of a confirmed booking.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	biz, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("business_not_found")
		}
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	loc, err := timezone.Resolve(biz.Timezone)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	day := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)

	weekday := domain.WeekdayIndex(day)
	var slot *TimeSlot
	for i := range biz.WorkingHours {
		if biz.WorkingHours[i].Weekday == weekday {
			slot = &TimeSlot{
				Start: biz.WorkingHours[i].StartTime,
				End:   biz.WorkingHours[i].EndTime,
			}
			break
		}
	}
	if slot == nil {
		return []TimeSlot{}, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(slot.Start)
	dayEnd := parseHM(slot.End)

	// Bookings just outside the day's hours can still conflict through
	// the buffer, so the query range is padded as well.
	rangeStart, rangeEnd := domain.PadWindow(dayStart.UTC(), dayEnd.UTC(), biz.BufferMinutes)
	bookings, err := uc.repo.ListConfirmedForRange(
		ctx,
		in.BusinessID,
		rangeStart,
		rangeEnd,
	)
	if err != nil {
		return nil, err
	}

	step := time.Duration(svc.DurationMinutes) * time.Minute
	var free []TimeSlot

	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slotStart := cur.UTC()
		slotEnd := cur.Add(step).UTC()
		windowStart, windowEnd := domain.PadWindow(slotStart, slotEnd, biz.BufferMinutes)

		conflict := false
		for _, b := range bookings {
			if domain.Overlaps(windowStart, windowEnd, b.StartTime, b.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			free = append(free, TimeSlot{
				Start: cur.Format("15:04"),
				End:   cur.Add(step).Format("15:04"),
			})
		}
	}

	if free == nil {
		free = []TimeSlot{}
	}
	return free, nil
}
