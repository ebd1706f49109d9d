package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/services"
)

func newSearchCmd(app *App) *cobra.Command {
	var category, lang string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [QUERY...]",
		Short: "Filter the project catalog the way the search box does",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := models.ParseCategory(category)
			if err != nil {
				return err
			}
			l := app.DefaultLanguage
			if lang != "" {
				if l, err = i18n.ParseLanguage(lang); err != nil {
					return err
				}
			}

			localizer, err := app.Content.Localizer()
			if err != nil {
				return err
			}
			view := services.NewSession(
				services.NewProjectService(app.Content.Catalog()),
				localizer,
				services.State{Query: strings.Join(args, " "), Category: c, Language: l},
			).View()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view.Projects)
			}

			if view.Empty() {
				fmt.Fprintln(out, view.EmptyMessage())
				return nil
			}

			fmt.Fprintln(out, view.Dictionary.Sprintf(i18n.ProjectsCount, len(view.Projects)))
			for _, p := range view.Projects {
				fmt.Fprintf(out, "\n%s", p.Title)
				if p.Highlight != models.HighlightNone {
					fmt.Fprintf(out, " [%s]", view.Dictionary.T(page.CategoryKey(models.Category(p.Highlight))))
				}
				fmt.Fprintf(out, "\n  %s\n  %s\n", p.Summary, strings.Join(p.Technologies, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category: all, featured, in-progress or prototype")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language (en or ja)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the matching projects as JSON")

	return cmd
}
