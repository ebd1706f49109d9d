package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/analytics"
)

func newStatsCmd(app *App) *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most common searches and the ones with no results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("no analytics database: set PORTFOLIO_ANALYTICS_DB or pass --db")
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			store, err := analytics.Open(dbPath, app.Config.AnalyticsSalt)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			top, err := store.TopQueries(ctx, limit)
			if err != nil {
				return err
			}
			zero, err := store.ZeroResultQueries(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printCounts(out, "Top searches", top)
			fmt.Fprintln(out)
			printCounts(out, "Searches with no results", zero)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", app.Config.AnalyticsDB, "Path to the analytics database")
	cmd.Flags().IntVar(&limit, "limit", 10, "Rows per table")

	return cmd
}

func printCounts(w io.Writer, title string, rows []analytics.QueryCount) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %5d  %-30s  %s\n", r.Count, r.Query, r.LastSeen.Format("2006-01-02 15:04"))
	}
}
