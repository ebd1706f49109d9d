package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/i18n"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check [CONTENT_DIR]",
		Short: "Validate the catalog, profile and dictionaries",
		Long: "Validate site content. Without an argument the configured content " +
			"directory is checked, or the embedded content when none is configured.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Config.ContentDir
			if len(args) == 1 {
				dir = args[0]
			}

			c, err := config.LoadContent(dir)
			if err != nil {
				return err
			}

			source := dir
			if source == "" {
				source = "embedded content"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d projects, %d languages, %d keys)\n",
				source, c.Catalog().Len(), len(c.Dictionaries), len(i18n.Keys()))
			return nil
		},
	}
}
