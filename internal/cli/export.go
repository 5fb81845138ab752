package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/charlit/internal/models"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file path (default: stdout)."`
	From   string `help:"Earliest date to include (YYYY-MM-DD)." default:"0000-01-01"`
	To     string `help:"Latest date to include (YYYY-MM-DD)." default:"9999-12-31"`
}

type exportDocument struct {
	ExportedAt time.Time            `json:"exported_at"`
	From       string               `json:"from,omitempty"`
	To         string               `json:"to,omitempty"`
	Usage      []models.UsageEntry  `json:"usage"`
	CheckIns   []models.CheckIn     `json:"check_ins"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	usage, err := ctx.Store.GetUsageForDateRange(c.From, c.To)
	if err != nil {
		return fmt.Errorf("failed to export usage entries: %w", err)
	}
	checkIns, err := ctx.Store.GetCheckInsForDateRange(c.From, c.To)
	if err != nil {
		return fmt.Errorf("failed to export check-ins: %w", err)
	}

	doc := exportDocument{
		ExportedAt: time.Now(),
		Usage:      usage,
		CheckIns:   checkIns,
	}
	if c.From != "0000-01-01" {
		doc.From = c.From
	}
	if c.To != "9999-12-31" {
		doc.To = c.To
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported %d usage entries and %d check-ins to %s\n", len(usage), len(checkIns), c.Output)
	return nil
}
