package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
)

type CheckInCmd struct {
	Date    string `help:"Date to check in for (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Mood    int    `short:"m" help:"Mood score (1-10)." default:"0"`
	Theme   string `short:"t" help:"Primary theme you noticed today."`
	Journal string `short:"j" help:"Optional journal note."`
}

func (c *CheckInCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	mood := c.Mood
	theme := c.Theme
	journal := c.Journal

	// No flags given: fall back to the interactive form
	if mood == 0 && theme == "" {
		if err := runCheckInForm(&mood, &theme, &journal); err != nil {
			return err
		}
	}

	if mood < 1 || mood > 10 {
		return fmt.Errorf("mood score must be between 1 and 10")
	}
	primaryTheme := models.Theme(theme)
	if _, ok := constants.ThemeDefinitions[primaryTheme]; !ok {
		return fmt.Errorf("unknown theme: %s", theme)
	}

	checkIn := models.CheckIn{
		ID:           uuid.New().String(),
		Date:         date,
		MoodScore:    mood,
		PrimaryTheme: primaryTheme,
		JournalEntry: journal,
		CreatedAt:    time.Now(),
	}

	if err := ctx.Store.SaveCheckIn(checkIn); err != nil {
		return err
	}

	fmt.Printf("Checked in for %s\n", date)

	streak, err := ctx.Engine.Streak()
	if err == nil && streak.CurrentStreak > 1 {
		fmt.Printf("Current streak: %d days\n", streak.CurrentStreak)
	}
	return nil
}

func runCheckInForm(mood *int, theme, journal *string) error {
	moodStr := "5"

	themeOptions := make([]huh.Option[string], 0, len(models.AllThemes))
	for _, t := range models.AllThemes {
		themeOptions = append(themeOptions, huh.NewOption(constants.ThemeDefinitions[t].Name, string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How was your mood today? (1-10)").
				Value(&moodStr).
				Validate(func(s string) error {
					v, err := strconv.Atoi(s)
					if err != nil || v < 1 || v > 10 {
						return fmt.Errorf("enter a number between 1 and 10")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Which theme showed up most today?").
				Options(themeOptions...).
				Value(theme),
			huh.NewText().
				Title("Anything you want to note? (optional)").
				Value(journal),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("check-in cancelled: %w", err)
	}

	v, err := strconv.Atoi(moodStr)
	if err != nil {
		return fmt.Errorf("invalid mood score: %w", err)
	}
	*mood = v
	return nil
}
