package tracker

import (
	"errors"

	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/logger"
	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/storage"
)

// Tracker is the daily counter: today's tally held against the goal, with
// reset-on-new-day semantics. The history ledger stays the source of truth;
// the tracker writes through to it on every increment.
type Tracker struct {
	store storage.Provider
	clk   clock.Clock
}

func New(store storage.Provider, clk clock.Clock) *Tracker {
	return &Tracker{
		store: store,
		clk:   clk,
	}
}

// Load returns today's intake state, rolling over to {0, today} when the
// stored date is stale. Read failures degrade to a fresh start rather than
// surfacing an error. Safe to call repeatedly; the rollover is idempotent.
func (t *Tracker) Load() models.WaterIntake {
	today := clock.Today(t.clk)

	intake, err := t.store.GetIntake()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read intake, starting fresh", "error", err)
		}
		return models.WaterIntake{Count: 0, Date: today}
	}

	if !clock.IsToday(t.clk, intake.Date) {
		// Day rollover: reset the counter. Yesterday's ledger record is
		// already final and stays untouched.
		intake = models.WaterIntake{Count: 0, Date: today}
		if err := t.store.SaveIntake(intake); err != nil {
			logger.Warn("Failed to persist rollover", "error", err)
		}
	}

	return intake
}

// Increment logs one drink, clamped at the goal. At or past the goal it is a
// no-op and returns the state unchanged. The new count is written through to
// both the intake state and today's ledger record; a failed write keeps the
// in-memory state authoritative.
func (t *Tracker) Increment(goal int) models.WaterIntake {
	intake := t.Load()

	if goal > 0 && intake.Count >= goal {
		return intake
	}

	intake.Count++
	if err := t.store.SaveIntake(intake); err != nil {
		logger.Warn("Failed to save intake", "error", err)
	}
	if err := t.store.SaveDayRecord(models.NewDayRecord(intake.Date, intake.Count, goal)); err != nil {
		logger.Warn("Failed to save day record", "error", err)
	}

	return intake
}

// Reset forces today's count back to zero. Used by rollover handling, not
// exposed as a user-facing undo.
func (t *Tracker) Reset() models.WaterIntake {
	intake := models.WaterIntake{Count: 0, Date: clock.Today(t.clk)}
	if err := t.store.SaveIntake(intake); err != nil {
		logger.Warn("Failed to reset intake", "error", err)
	}
	return intake
}

// Progress reports count/goal for the presentation layer, 0 when the goal is
// unset. The clamp in Increment keeps the result within [0, 1].
func Progress(count, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(count) / float64(goal)
}
