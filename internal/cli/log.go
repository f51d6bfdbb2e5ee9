package cli

import (
	"fmt"

	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/tracker"
)

type LogCmd struct {
	Count int `help:"Number of drinks to log." default:"1"`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	t := tracker.New(ctx.Store, ctx.Clock)

	var intake models.WaterIntake
	for i := 0; i < c.Count; i++ {
		intake = t.Increment(settings.DailyGoal)
	}

	fmt.Printf("💧 %s\n", FormatProgress(intake.Count, settings.DailyGoal))
	if intake.Count >= settings.DailyGoal {
		fmt.Println("Daily goal reached! 🎉")
	}

	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	t := tracker.New(ctx.Store, ctx.Clock)
	intake := t.Load()

	fmt.Printf("Today (%s)\n", intake.Date)
	fmt.Printf("  %s\n", FormatProgress(intake.Count, settings.DailyGoal))
	if intake.Count >= settings.DailyGoal {
		fmt.Println("  Goal met ✔")
	} else {
		fmt.Printf("  %d to go\n", settings.DailyGoal-intake.Count)
	}

	return nil
}

// FormatProgress renders a count against a goal as a bar with a percentage.
func FormatProgress(count, goal int) string {
	const width = 16

	filled := 0
	if goal > 0 {
		filled = count * width / goal
	}
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	return fmt.Sprintf("%d/%d [%s] %d%%", count, goal, bar, int(tracker.Progress(count, goal)*100))
}
