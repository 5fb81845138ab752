package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/charlit/internal/backup"
	"github.com/julianstephens/charlit/internal/scoring"
	"github.com/julianstephens/charlit/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *scoring.Engine
}

// resolveDate turns "today"/"yesterday"/YYYY-MM-DD into a validated date key.
func resolveDate(s string) (string, error) {
	switch s {
	case "", "today":
		return time.Now().Format("2006-01-02"), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'yesterday': %w", err)
	}
	return s, nil
}

// resolveWeekStart turns "current"/a date into the Monday that anchors its
// week.
func resolveWeekStart(s string, engine *scoring.Engine) (string, error) {
	if s == "" || s == "current" {
		return engine.CurrentWeekStart(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid week date, use YYYY-MM-DD or 'current': %w", err)
	}
	return scoring.WeekStart(t), nil
}

// PerformAutomaticBackup takes a best-effort snapshot of the store. Failures
// are reported but never block the command that triggered it.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}
