package stats

import (
	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/logger"
	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/storage"
)

// Engine derives streak, weekly window, and lifetime totals from the history
// ledger. It is read-only: every computation works off one ledger snapshot.
type Engine struct {
	store storage.Provider
	clk   clock.Clock
}

func New(store storage.Provider, clk clock.Clock) *Engine {
	return &Engine{
		store: store,
		clk:   clk,
	}
}

// Compute returns the aggregate stats view. todayGoal is only used to fill
// placeholder records for days with no ledger entry. A failed ledger read
// degrades to empty-ledger stats instead of erroring.
func (e *Engine) Compute(todayGoal int) models.Stats {
	history, err := e.store.GetHistory()
	if err != nil {
		logger.Warn("Failed to read history, computing stats from empty ledger", "error", err)
		history = map[string]models.DayRecord{}
	}

	return models.Stats{
		CurrentStreak: e.currentStreak(history),
		TotalGoalDays: totalGoalDays(history),
		WeeklyData:    e.weeklyData(history, todayGoal),
	}
}

// weeklyData returns exactly 7 records, oldest first, ending with today.
// Days the ledger never saw appear as zero-count placeholders.
func (e *Engine) weeklyData(history map[string]models.DayRecord, todayGoal int) []models.DayRecord {
	weekly := make([]models.DayRecord, 0, 7)

	for i := 6; i >= 0; i-- {
		date := clock.DaysAgo(e.clk, i)
		if record, ok := history[date]; ok {
			weekly = append(weekly, record)
		} else {
			weekly = append(weekly, models.DayRecord{
				Date:    date,
				Count:   0,
				Goal:    todayGoal,
				GoalMet: false,
			})
		}
	}

	return weekly
}

// currentStreak counts consecutive goal-met days ending at today, walking
// backward one day at a time. Today is exempt from breaking the streak while
// its goal is still in progress: an existing today record with the goal not
// yet met is skipped without counting. A day with no record at all breaks the
// streak even when it is today; the asymmetry is intentional.
func (e *Engine) currentStreak(history map[string]models.DayRecord) int {
	today := clock.Today(e.clk)
	streak := 0

	for i := 0; ; i++ {
		date := clock.DaysAgo(e.clk, i)
		record, ok := history[date]

		switch {
		case ok && record.GoalMet:
			streak++
		case date == today && ok && !record.GoalMet:
			// Goal not reached yet; keep walking without counting today.
		default:
			return streak
		}
	}
}

// totalGoalDays counts every ledger entry with the goal met, over all time.
func totalGoalDays(history map[string]models.DayRecord) int {
	total := 0
	for _, record := range history {
		if record.GoalMet {
			total++
		}
	}
	return total
}
