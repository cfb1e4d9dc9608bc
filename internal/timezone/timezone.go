package timezone

import (
	"fmt"
	"time"
)

// Resolve loads an IANA zone by name. Unknown or empty names are an
// error; there is no fallback zone, callers surface invalid_timezone.
func Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("empty timezone name")
	}
	return time.LoadLocation(name)
}

func IsValid(name string) bool {
	_, err := Resolve(name)
	return err == nil
}

// ToLocal converts a UTC instant to civil time in the given zone.
// Instants without an explicit offset are interpreted as UTC. DST is
// handled by the zone database, not a fixed offset.
func ToLocal(instant time.Time, loc *time.Location) time.Time {
	return instant.UTC().In(loc)
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
