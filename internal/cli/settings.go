package cli

import (
	"fmt"

	"github.com/julianstephens/charlit/internal/constants"
	"github.com/julianstephens/charlit/internal/models"
)

type SettingsCmd struct {
	List SettingsListCmd `cmd:"" help:"Show which themes are visible in reports." default:"1"`
	Hide SettingsHideCmd `cmd:"" help:"Hide a theme from reports."`
	Show SettingsShowCmd `cmd:"" help:"Show a previously hidden theme again."`
}

type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	hidden := make(map[string]bool, len(settings.HiddenThemes))
	for _, t := range settings.HiddenThemes {
		hidden[t] = true
	}

	fmt.Println("Theme visibility:")
	for _, theme := range models.AllThemes {
		marker := "visible"
		if hidden[string(theme)] {
			marker = "hidden"
		}
		fmt.Printf("  %-12s %s\n", constants.ThemeDefinitions[theme].Name, marker)
	}
	return nil
}

type SettingsHideCmd struct {
	Theme string `arg:"" help:"Theme to hide (e.g. sloth, envy)."`
}

func (c *SettingsHideCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := validTheme(c.Theme); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, t := range settings.HiddenThemes {
		if t == c.Theme {
			fmt.Printf("%s is already hidden.\n", c.Theme)
			return nil
		}
	}
	settings.HiddenThemes = append(settings.HiddenThemes, c.Theme)

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Hidden %s from reports. Scores are still computed and stored.\n", c.Theme)
	return nil
}

type SettingsShowCmd struct {
	Theme string `arg:"" help:"Theme to show again."`
}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := validTheme(c.Theme); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	kept := settings.HiddenThemes[:0]
	found := false
	for _, t := range settings.HiddenThemes {
		if t == c.Theme {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		fmt.Printf("%s is not hidden.\n", c.Theme)
		return nil
	}
	settings.HiddenThemes = kept

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("%s is visible in reports again.\n", c.Theme)
	return nil
}

func validTheme(name string) error {
	if _, ok := constants.ThemeDefinitions[models.Theme(name)]; !ok {
		return fmt.Errorf("unknown theme: %s", name)
	}
	return nil
}
