package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/charlit/internal/backup"
	"github.com/julianstephens/charlit/internal/storage"
	ps "github.com/mitchellh/go-ps"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	// Check 2: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 3: no other charlit process (warning only; the store is
	// single-writer and concurrent processes risk corruption)
	if others, err := otherCharlitProcesses(); err != nil {
		fmt.Printf("⊘ Concurrent processes: SKIPPED (%v)\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   Another charlit process appears to be running (pid %d). The store is not safe for concurrent writers.\n", others[0])
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	// For SQLite, also confirm the connection answers a query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
			return fmt.Errorf("database query failed: %w", err)
		}
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'charlit backup create'")
	}
	return nil
}

func otherCharlitProcesses() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	exe := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")

	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == exe {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

func checkClockTimezone() error {
	now := time.Now()
	// Catches grossly wrong clocks that would wreck date-keyed records
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation("Local"); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
