package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reminders without a time are compared at this implicit hour; the stored
// record keeps its time absent.
const defaultComparisonHour = 9

// ValidateFuture checks that a normalized date (YYYY-MM-DD) and optional time
// (HH:MM, "" for absent) are not in the past relative to the reference.
// Same-day reminders are accepted whenever the time-of-day is still ahead.
// The returned error text is user-facing.
func ValidateFuture(date, clock string, ref Reference) error {
	target, err := time.Parse(ISODate, date)
	if err != nil {
		return fmt.Errorf("invalid date/time format: %s", date)
	}
	today, ok := ref.day()
	if !ok {
		return fmt.Errorf("invalid date/time format: %s", ref.Date)
	}

	hour, minute := defaultComparisonHour, 0
	if clock != "" {
		hour, minute, err = parseClock(clock)
		if err != nil {
			return err
		}
	}

	reminderAt := time.Date(target.Year(), target.Month(), target.Day(), hour, minute, 0, 0, time.UTC)
	nowAt := time.Date(today.Year(), today.Month(), today.Day(), ref.Hour, ref.Minute, 0, 0, time.UTC)

	if reminderAt.After(nowAt) {
		return nil
	}

	if date == ref.Date {
		return fmt.Errorf("Cannot set reminder for past time. Current time is %s and you're trying to set it for %02d:%02d.",
			ref.Clock(), hour, minute)
	}
	return fmt.Errorf("Cannot set reminder for past date. Today is %s and you're trying to set it for %s.",
		ref.Date, date)
}

func parseClock(clock string) (int, int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid date/time format: %s", clock)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid date/time format: %s", clock)
	}
	return hour, minute, nil
}
