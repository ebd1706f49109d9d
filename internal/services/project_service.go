package services

import (
	"portfolio.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *models.Catalog
}

// NewProjectService creates a new ProjectService
func NewProjectService(catalog *models.Catalog) *ProjectService {
	return &ProjectService{catalog: catalog}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.Projects()
}

// GetByTitle returns a specific project by its title
func (s *ProjectService) GetByTitle(title string) (models.Project, error) {
	return s.catalog.ByTitle(title)
}

// Filter returns the visible subset for a query and category
func (s *ProjectService) Filter(query string, category models.Category) []models.Project {
	return Filter(s.catalog.Projects(), query, category)
}
