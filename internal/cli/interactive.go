package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/yurukusa/cc-standup/internal/config"
)

// runInteractiveForm lets the user pick the output format and the report
// date before the report is generated. Both fields start at their resolved
// configuration values.
func runInteractiveForm(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("Plain text", "plain"),
					huh.NewOption("Slack", "slack"),
					huh.NewOption("Twitter/X", "twitter"),
				).
				Value(&cfg.Format),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(config.Yesterday()).
				Value(&cfg.Date).
				Validate(validateDate),
		),
	).WithShowHelp(false)

	return form.Run()
}

// validateDate accepts empty input (keeps the default) or a YYYY-MM-DD date.
func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}
