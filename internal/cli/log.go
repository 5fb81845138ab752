package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/charlit/internal/models"
)

type LogCmd struct {
	Date string `arg:"" help:"Date to log (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`

	Social        int     `help:"Social media minutes." default:"0"`
	Shopping      int     `help:"Shopping minutes." default:"0"`
	Entertainment int     `help:"Entertainment minutes." default:"0"`
	Dating        int     `help:"Dating app minutes." default:"0"`
	Productivity  int     `help:"Productivity minutes." default:"0"`
	News          int     `help:"News minutes." default:"0"`
	Games         int     `help:"Games minutes." default:"0"`
	Pickups       int     `help:"Phone pickup count." default:"0"`
	LateNight     int     `help:"Late-night usage minutes (after 11pm)." default:"0"`
	Steps         int     `help:"Step count." default:"0"`
	Sleep         float64 `help:"Sleep hours." default:"0"`
	Wake          string  `help:"Wake time (HH:MM)." default:""`
}

func (c *LogCmd) Validate() error {
	for name, v := range map[string]int{
		"social": c.Social, "shopping": c.Shopping, "entertainment": c.Entertainment,
		"dating": c.Dating, "productivity": c.Productivity, "news": c.News,
		"games": c.Games, "pickups": c.Pickups, "late-night": c.LateNight, "steps": c.Steps,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if c.Sleep < 0 || c.Sleep > 24 {
		return fmt.Errorf("sleep hours must be between 0 and 24")
	}
	if c.Wake != "" {
		if _, err := time.Parse("15:04", c.Wake); err != nil {
			return fmt.Errorf("invalid wake time format, use HH:MM: %w", err)
		}
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	entry := models.UsageEntry{
		Date:                  date,
		SocialMediaMinutes:    c.Social,
		ShoppingMinutes:       c.Shopping,
		EntertainmentMinutes:  c.Entertainment,
		DatingAppsMinutes:     c.Dating,
		ProductivityMinutes:   c.Productivity,
		NewsMinutes:           c.News,
		GamesMinutes:          c.Games,
		PhonePickups:          c.Pickups,
		LateNightUsageMinutes: c.LateNight,
		Steps:                 c.Steps,
		SleepHours:            c.Sleep,
		WakeTime:              c.Wake,
		CreatedAt:             time.Now(),
	}

	// Saving for a date that already has an entry replaces it
	if err := ctx.Store.SaveUsageEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Logged usage for %s\n", date)
	return nil
}
