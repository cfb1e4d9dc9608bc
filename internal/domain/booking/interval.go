package booking

import "time"

// Overlaps is the half-open interval intersection test. Intervals that
// only touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// PadWindow widens [start, end) by bufferMinutes on both sides. The
// padded window is used for conflict detection only, never stored.
func PadWindow(start, end time.Time, bufferMinutes int) (time.Time, time.Time) {
	pad := time.Duration(bufferMinutes) * time.Minute
	return start.Add(-pad), end.Add(pad)
}
