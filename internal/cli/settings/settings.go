package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thisisharsh7/drink-log/internal/cli"
	"github.com/thisisharsh7/drink-log/internal/constants"
	"github.com/thisisharsh7/drink-log/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Goal          *int  `help:"Daily goal in drinks."`
	Notifications *bool `help:"Enable or disable hydration reminders."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Daily Goal:            %d\n", settings.DailyGoal)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		return nil
	}

	if c.Goal == nil && c.Notifications == nil {
		return c.runForm(ctx, settings)
	}

	updated := false
	if c.Goal != nil {
		clamped := models.ClampGoal(*c.Goal)
		if clamped != *c.Goal {
			fmt.Printf("Goal clamped to %d (allowed range %d-%d).\n",
				clamped, constants.MinDailyGoal, constants.MaxDailyGoal)
		}
		if clamped != settings.DailyGoal {
			settings.DailyGoal = clamped
			updated = true
		}
	}
	if c.Notifications != nil && *c.Notifications != settings.NotificationsEnabled {
		settings.NotificationsEnabled = *c.Notifications
		updated = true
	}

	// Skip the write when nothing actually changed
	if !updated {
		fmt.Println("Settings unchanged.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")

	return nil
}

func (c *SettingsCmd) runForm(ctx *cli.Context, settings models.Settings) error {
	goalStr := strconv.Itoa(settings.DailyGoal)
	notifications := settings.NotificationsEnabled

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily Goal").
				Description(fmt.Sprintf("Drinks per day (%d-%d)", constants.MinDailyGoal, constants.MaxDailyGoal)).
				Value(&goalStr).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("goal must be a number")
					}
					if i < constants.MinDailyGoal || i > constants.MaxDailyGoal {
						return fmt.Errorf("goal must be between %d and %d", constants.MinDailyGoal, constants.MaxDailyGoal)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Hydration Reminders").
				Value(&notifications),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	goal, err := strconv.Atoi(strings.TrimSpace(goalStr))
	if err != nil {
		return fmt.Errorf("goal must be a number: %w", err)
	}

	newSettings := models.Settings{
		DailyGoal:            models.ClampGoal(goal),
		NotificationsEnabled: notifications,
	}

	if newSettings == settings {
		fmt.Println("Settings unchanged.")
		return nil
	}

	if err := ctx.Store.SaveSettings(newSettings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")

	return nil
}
