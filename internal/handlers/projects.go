package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	views          *viewFactory
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, views *viewFactory) *ProjectHandler {
	return &ProjectHandler{projectService: ps, views: views}
}

type projectListResponse struct {
	Query        string           `json:"query"`
	Category     models.Category  `json:"category"`
	Language     string           `json:"language"`
	Count        int              `json:"count"`
	Projects     []models.Project `json:"projects"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// ListProjects handles GET /api/projects?q=&category=&lang=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.fromRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.views.recordSearch(r, view)

	respondJSON(w, http.StatusOK, projectListResponse{
		Query:        view.State.Query,
		Category:     view.State.Category,
		Language:     string(view.State.Language),
		Count:        len(view.Projects),
		Projects:     view.Projects,
		EmptyMessage: view.EmptyMessage(),
	})
}

// GetProject handles GET /api/projects/{title}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	project, err := h.projectService.GetByTitle(title)
	if errors.Is(err, models.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
