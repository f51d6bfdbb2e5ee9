package clock

import (
	"time"

	"github.com/thisisharsh7/drink-log/internal/constants"
)

// Clock provides the current moment. Injecting it keeps every date
// derivation deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock in the local timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today returns the canonical key (YYYY-MM-DD) for the current local calendar day.
func Today(c Clock) string {
	return c.Now().Format(constants.DateFormat)
}

// DaysAgo returns the calendar-day key for n days before today. Month and
// year boundaries roll over via calendar subtraction.
func DaysAgo(c Clock, n int) string {
	return c.Now().AddDate(0, 0, -n).Format(constants.DateFormat)
}

// IsToday reports whether the given date key is the current calendar day.
func IsToday(c Clock, date string) bool {
	return date == Today(c)
}
