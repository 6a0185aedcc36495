package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yurukusa/cc-standup/internal/cli/formatter"
	"github.com/yurukusa/cc-standup/internal/config"
	"github.com/yurukusa/cc-standup/internal/domain"
	"github.com/yurukusa/cc-standup/internal/report"
)

// App holds everything the CLI commands need.
type App struct {
	Config  config.Config
	Version string

	// IsInteractive reports whether stdin is a terminal; interactive mode
	// is refused when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cc-standup" command. Running it with no
// subcommand generates the report.
func NewRootCmd(app *App) *cobra.Command {
	var (
		date        string
		logDir      string
		format      string
		interactive bool
	)

	root := &cobra.Command{
		Use:           "cc-standup",
		Short:         "Generate a standup report from Claude Code activity logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if date != "" {
				cfg.Date = date
			}
			if logDir != "" {
				cfg.LogDir = logDir
			}
			if format != "" {
				cfg.Format = format
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				if err := runInteractiveForm(&cfg); err != nil {
					return fmt.Errorf("interactive prompt: %w", err)
				}
			}

			rep := report.NewService(cfg).Generate(cfg.Date)
			out := formatter.Format(rep, domain.ParseFormat(cfg.Format))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	root.Flags().StringVar(&date, "date", "", "Report date (YYYY-MM-DD, default yesterday)")
	root.Flags().StringVar(&logDir, "dir", "", "Directory holding the daily activity logs")
	root.Flags().StringVarP(&format, "format", "f", "", "Output format: plain, slack or twitter")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick format and date interactively")

	root.AddCommand(newVersionCmd(app))

	return root
}
