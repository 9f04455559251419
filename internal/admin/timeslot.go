package admin

import (
	"fmt"
	"strings"
	"time"
)

// timeSlotLayouts are tried in order after a space separator has been
// normalized to "T". Fractional seconds are accepted by the seconds layouts.
var timeSlotLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// DayKey identifies a calendar day, the first ten characters of a slot token
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// SlotKey identifies a time of day at minute precision
type SlotKey struct {
	Hour   int
	Minute int
}

// String renders the key as YYYY-MM-DD
func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// String renders the key as HH:MM
func (k SlotKey) String() string {
	return fmt.Sprintf("%02d:%02d", k.Hour, k.Minute)
}

// Before reports whether k is earlier in the calendar than other
func (k DayKey) Before(other DayKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

// Before reports whether k is earlier in the day than other
func (k SlotKey) Before(other SlotKey) bool {
	if k.Hour != other.Hour {
		return k.Hour < other.Hour
	}
	return k.Minute < other.Minute
}

// ParseTimeSlot parses a reservation time slot. The wall clock is kept as
// written: an offset, when present, is not converted to another zone. The
// result is expressed in UTC so it can be formatted without zone surprises.
func ParseTimeSlot(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time slot")
	}
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}
	// the hour layout accepts a single digit, so pin HH:MM width first
	if !fixedWidthClock(value) {
		return time.Time{}, fmt.Errorf("invalid time slot %q: want YYYY-MM-DD HH:MM", s)
	}

	for _, layout := range timeSlotLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("invalid time slot %q: want YYYY-MM-DD HH:MM", s)
}

func fixedWidthClock(value string) bool {
	if len(value) < 16 || value[10] != 'T' || value[13] != ':' {
		return false
	}
	for _, i := range []int{11, 12, 14, 15} {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// Keys splits a parsed slot into its day and time-of-day keys
func Keys(t time.Time) (DayKey, SlotKey) {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()},
		SlotKey{Hour: t.Hour(), Minute: t.Minute()}
}
