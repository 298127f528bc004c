package timezone

import (
	"strings"
	"time"
)

const DefaultTimezone = "Europe/Sofia"

// LocalLayout is the value format of <input type="datetime-local">.
const LocalLayout = "2006-01-02T15:04"

// DisplayLayout is used in schedule listings.
const DisplayLayout = "02 Jan 2006 15:04"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseLocal parses a datetime-local value in loc. Seconds are accepted.
func ParseLocal(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.ParseInLocation(LocalLayout, value, loc)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.ParseInLocation(LocalLayout+":05", value, loc); err2 == nil {
		return t2, nil
	}
	return time.Time{}, err
}

func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DisplayLayout)
}
