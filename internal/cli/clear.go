package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm("This permanently deletes ALL usage entries and check-ins. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Snapshot before wiping so a slip is recoverable
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ClearAll(); err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return nil
}

func confirm(question string) (bool, error) {
	fmt.Printf("%s [y/N]: ", question)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
