package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/charlit/internal/demo"
)

type DemoCmd struct {
	Seed  DemoSeedCmd  `cmd:"" help:"Replace all data with 14 days of sample entries."`
	Sloth DemoSlothCmd `cmd:"" help:"Add a week of identical low-momentum days."`
}

type DemoSeedCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *DemoSeedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm("This replaces ALL existing entries with sample data. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := demo.Seed(ctx.Store, time.Now()); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.DemoSeeded = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Seeded 14 days of sample data. Try 'charlit week'.")
	return nil
}

type DemoSlothCmd struct{}

func (c *DemoSlothCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := demo.SeedSlothWeek(ctx.Store, time.Now()); err != nil {
		return err
	}

	fmt.Println("Seeded a low-momentum week ending today. Try 'charlit week'.")
	return nil
}
