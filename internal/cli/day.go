package cli

import (
	"fmt"

	"github.com/julianstephens/charlit/internal/constants"
)

type DayCmd struct {
	Date    string `arg:"" help:"Date to score (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Verbose bool   `short:"v" help:"Show the signal breakdown for each theme."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	scores, err := ctx.Engine.CalculateDailyScores(date)
	if err != nil {
		return err
	}

	fmt.Printf("Theme scores for %s:\n\n", date)

	hasData := false
	for _, score := range scores {
		if score.Confidence > 0 {
			hasData = true
		}
		name := constants.ThemeDefinitions[score.Theme].Name
		fmt.Printf("  %-12s %4.1f/10\n", name, score.Score)

		if c.Verbose {
			for _, sig := range score.SignalBreakdown {
				fmt.Printf("               %-24s raw %.0f, normalized %.2f, weight %.1f\n",
					sig.Label, sig.RawValue, sig.NormalizedValue, sig.Weight)
			}
		}
	}

	if !hasData {
		fmt.Println("\nNo data recorded for this date. Scores are zero-confidence.")
	}

	return nil
}
