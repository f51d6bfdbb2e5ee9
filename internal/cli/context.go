package cli

import (
	"github.com/thisisharsh7/drink-log/internal/backup"
	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/logger"
	"github.com/thisisharsh7/drink-log/internal/storage"
)

type Context struct {
	Store storage.Provider
	Clock clock.Clock
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
