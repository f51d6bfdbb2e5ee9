package system

import (
	"fmt"

	"github.com/thisisharsh7/drink-log/internal/cli"
	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/notifier"
	"github.com/thisisharsh7/drink-log/internal/reminder"
	"github.com/thisisharsh7/drink-log/internal/tracker"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	// No point nagging once the goal is met
	intake := tracker.New(ctx.Store, ctx.Clock).Load()
	if intake.Count >= settings.DailyGoal {
		if c.DryRun {
			fmt.Println("Daily goal already met; nothing to send.")
		}
		return nil
	}

	schedule := reminder.NewSchedule()
	due, ok := schedule.Due(ctx.Clock.Now(), constants.ReminderGracePeriod)
	if !ok {
		if c.DryRun {
			fmt.Println("No reminder due.")
		}
		return nil
	}

	if c.DryRun {
		fmt.Printf("[DRY RUN] Would notify: %s\n", due.Message)
		return nil
	}

	return notifier.New().Notify(due.Message)
}
