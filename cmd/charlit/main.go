package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/charlit/internal/cli"
	"github.com/julianstephens/charlit/internal/scoring"
	"github.com/julianstephens/charlit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/charlit/charlit.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize charlit storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Log      cli.LogCmd      `cmd:"" help:"Log a day's usage entry."`
	Checkin  cli.CheckInCmd  `cmd:"" help:"Record a daily check-in."`
	Day      cli.DayCmd      `cmd:"" help:"Show theme scores for a day."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the weekly report."`
	Streak   cli.StreakCmd   `cmd:"" help:"Show the check-in streak."`
	Export   cli.ExportCmd   `cmd:"" help:"Export raw records as JSON."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage theme visibility."`
	Demo     cli.DemoCmd     `cmd:"" help:"Seed sample data."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage store backups."`
	Clear    cli.ClearCmd    `cmd:"" help:"Delete all usage entries and check-ins."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("charlit"),
		kong.Description("Character insights companion: daily behavior in, weekly theme reports out"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: scoring.NewEngine(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
