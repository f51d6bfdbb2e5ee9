package reminder

import (
	"fmt"
	"time"

	"github.com/thisisharsh7/drink-log/internal/constants"
)

// Reminder is one daily hydration prompt.
type Reminder struct {
	Time    string // HH:MM, local time
	Message string
}

// Schedule is the fixed set of daily reminders. Messages rotate across the
// slots the way the stock message list is longer than the slot list.
type Schedule struct {
	reminders []Reminder
}

// NewSchedule builds the default schedule from the configured reminder times.
func NewSchedule() *Schedule {
	return NewScheduleWithTimes(constants.ReminderTimes)
}

// NewScheduleWithTimes builds a schedule for the given HH:MM times.
func NewScheduleWithTimes(times []string) *Schedule {
	reminders := make([]Reminder, 0, len(times))
	for i, t := range times {
		reminders = append(reminders, Reminder{
			Time:    t,
			Message: constants.ReminderMessages[i%len(constants.ReminderMessages)],
		})
	}
	return &Schedule{reminders: reminders}
}

// Reminders returns the schedule's reminders in slot order.
func (s *Schedule) Reminders() []Reminder {
	return s.reminders
}

// Due returns the reminder whose slot time falls within [now-grace, now],
// or false when nothing is due. With a dispatch cadence shorter than the
// grace period every slot fires exactly once per day.
func (s *Schedule) Due(now time.Time, grace time.Duration) (Reminder, bool) {
	for _, r := range s.reminders {
		slot, err := time.Parse(constants.TimeFormat, r.Time)
		if err != nil {
			continue
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), slot.Hour(), slot.Minute(), 0, 0, now.Location())
		if !now.Before(at) && now.Sub(at) <= grace {
			return r, true
		}
	}
	return Reminder{}, false
}

// Validate checks every slot time parses as HH:MM.
func (s *Schedule) Validate() error {
	for _, r := range s.reminders {
		if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
			return fmt.Errorf("invalid reminder time %q: %w", r.Time, err)
		}
	}
	return nil
}
