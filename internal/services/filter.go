package services

import (
	"strings"

	"portfolio.dev/internal/models"
)

// Filter returns the projects that match both the category and the query,
// in catalog order. The result is never nil, so an empty slice always means
// "filtered, nothing matched".
func Filter(projects []models.Project, query string, category models.Category) []models.Project {
	needle := strings.ToLower(query)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !category.Matches(p.Highlight) {
			continue
		}
		if needle != "" && !strings.Contains(p.SearchText(), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
