package cli

import (
	"fmt"

	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/stats"
	"github.com/thisisharsh7/drink-log/internal/storage"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	engine := stats.New(ctx.Store, ctx.Clock)
	data := engine.Compute(settings.DailyGoal)

	fmt.Printf("Current streak:  %d day(s)\n", data.CurrentStreak)
	fmt.Printf("Total goal days: %d\n", data.TotalGoalDays)
	fmt.Println("\nLast 7 days:")
	for _, record := range data.WeeklyData {
		marker := " "
		if record.GoalMet {
			marker = "✔"
		}
		fmt.Printf("  %s  %2d/%-2d %s\n", record.Date, record.Count, record.Goal, marker)
	}

	return nil
}

type HistoryCmd struct {
	Days int `help:"Number of days to show." default:"14"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	shown := 0
	for i := c.Days - 1; i >= 0; i-- {
		date := clock.DaysAgo(ctx.Clock, i)
		record, err := ctx.Store.GetDayRecord(date)
		if err == storage.ErrNotFound {
			continue
		}
		if err != nil {
			return err
		}

		marker := " "
		if record.GoalMet {
			marker = "✔"
		}
		fmt.Printf("%s  %2d/%-2d %s\n", record.Date, record.Count, record.Goal, marker)
		shown++
	}

	if shown == 0 {
		fmt.Println("No history yet. Log a drink with 'drinklog log'.")
	}

	return nil
}
