package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/export"
)

func newGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate OUTPUT_DIR",
		Short: "Export the site as static files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			files, err := export.Site(args[0], app.Content, app.Now().Year())
			for _, f := range files {
				fmt.Fprintf(out, "  Created %s\n", f)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Done!")
			return nil
		},
	}
}
