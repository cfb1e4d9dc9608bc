package timezone

import (
	"testing"
	"time"
)

func TestResolveRejectsUnknownZones(t *testing.T) {
	cases := []string{"", "Mars/Olympus", "America/NotACity", "UTC+4"}
	for _, name := range cases {
		if _, err := Resolve(name); err == nil {
			t.Errorf("Resolve(%q) accepted an invalid zone", name)
		}
		if IsValid(name) {
			t.Errorf("IsValid(%q) = true", name)
		}
	}

	if !IsValid("Asia/Dubai") {
		t.Fatal("IsValid(Asia/Dubai) = false")
	}
}

func TestToLocalFixedOffsetZone(t *testing.T) {
	loc, err := Resolve("Asia/Dubai")
	if err != nil {
		t.Fatal(err)
	}

	utc := time.Date(2025, 9, 3, 6, 0, 0, 0, time.UTC)
	local := ToLocal(utc, loc)

	if local.Hour() != 10 || local.Minute() != 0 {
		t.Fatalf("expected 10:00 local, got %s", local.Format("15:04"))
	}
	if !local.Equal(utc) {
		t.Fatal("conversion changed the instant")
	}
}

func TestToLocalHonoursDST(t *testing.T) {
	loc, err := Resolve("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}

	winter := ToLocal(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), loc)
	summer := ToLocal(time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC), loc)

	_, winterOff := winter.Zone()
	_, summerOff := summer.Zone()

	if winterOff != 1*3600 {
		t.Errorf("winter offset = %d, want +01:00", winterOff)
	}
	if summerOff != 2*3600 {
		t.Errorf("summer offset = %d, want +02:00", summerOff)
	}
}

func TestToLocalAssumesUTCForNaiveInstants(t *testing.T) {
	loc, err := Resolve("Asia/Dubai")
	if err != nil {
		t.Fatal(err)
	}

	// An instant tagged with a non-UTC zone is still the same instant;
	// ToLocal normalizes through UTC first.
	ny, _ := time.LoadLocation("America/New_York")
	instant := time.Date(2025, 9, 3, 2, 0, 0, 0, ny) // 06:00 UTC

	local := ToLocal(instant, loc)
	if local.Hour() != 10 {
		t.Fatalf("expected 10:00 local, got %s", local.Format("15:04"))
	}
}
