package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/content"
	"portfolio.dev/internal/i18n"
)

// App holds what every subcommand needs.
type App struct {
	Config          *config.Config
	Content         *content.Content
	DefaultLanguage i18n.Language
	Logger          *slog.Logger
	Now             func() time.Time
}

// NewRootCmd creates the top-level "portfolio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Logger == nil {
		app.Logger = slog.Default()
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.DefaultLanguage == "" {
		app.DefaultLanguage = i18n.DefaultLanguage
	}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Bilingual portfolio site with a searchable project catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newCheckCmd(app),
		newSearchCmd(app),
		newGenerateCmd(app),
		newStatsCmd(app),
	)

	return root
}
