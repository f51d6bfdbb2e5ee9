package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/thisisharsh7/drink-log/internal/cli"
	"github.com/thisisharsh7/drink-log/internal/cli/backups"
	"github.com/thisisharsh7/drink-log/internal/cli/settings"
	"github.com/thisisharsh7/drink-log/internal/cli/system"
	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/constants"
	apperrors "github.com/thisisharsh7/drink-log/internal/errors"
	"github.com/thisisharsh7/drink-log/internal/keyring"
	"github.com/thisisharsh7/drink-log/internal/logger"
	"github.com/thisisharsh7/drink-log/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path or PostgreSQL connection string. Credentials must NOT be embedded in connection strings; use environment variables, .pgpass, or the OS keyring." default:"~/.config/drinklog/drinklog.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize drinklog storage."`
	Log      cli.LogCmd           `cmd:"" help:"Log a drink."`
	Status   cli.StatusCmd        `cmd:"" help:"Show today's intake and progress."`
	Stats    cli.StatsCmd         `cmd:"" help:"Show streak, totals, and the weekly window."`
	History  cli.HistoryCmd       `cmd:"" help:"Show recent day records."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive view." default:"1"`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Dispatch a due hydration reminder (used by cron/systemd)."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily water-intake tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := resolveConfig(CLI.Config)

	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if _, err := storage.ValidateConnString(config); err != nil {
			if errors.Is(err, storage.ErrEmbeddedCredentials) {
				fmt.Fprintln(os.Stderr, "Store credentials in the OS keyring ('drinklog keyring set'),")
				fmt.Fprintln(os.Stderr, "the DRINKLOG_DB_CONNECTION environment variable, or .pgpass.")
			}
			apperrors.Fatal(err)
		}
		store = storage.NewPostgresStore(config)
	} else if strings.HasSuffix(config, ".json") {
		store = storage.NewJSONStore(config)
	} else {
		store = storage.NewSQLiteStore(config)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir(config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: clock.SystemClock{},
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

// resolveConfig expands the store location. When the user left the default
// path untouched, a connection string from the environment or OS keyring
// takes precedence.
func resolveConfig(config string) string {
	if config == constants.DefaultConfigPath {
		if env := os.Getenv("DRINKLOG_DB_CONNECTION"); env != "" {
			return env
		}
		if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
			return connStr
		}
	}

	if strings.HasPrefix(config, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, config[2:])
		}
	}

	return config
}

// logDir picks a directory for log files: next to a file-backed store, or
// the user config dir for database-backed stores.
func logDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	return filepath.Dir(config)
}
