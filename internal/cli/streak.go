package cli

import "fmt"

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	streak, err := ctx.Engine.Streak()
	if err != nil {
		return err
	}

	if streak.LastCheckInDate == "" {
		fmt.Println("No check-ins yet. Start with 'charlit checkin'.")
		return nil
	}

	fmt.Printf("Current streak: %d days\n", streak.CurrentStreak)
	fmt.Printf("Longest streak: %d days\n", streak.LongestStreak)
	fmt.Printf("Last check-in:  %s\n", streak.LastCheckInDate)
	return nil
}
