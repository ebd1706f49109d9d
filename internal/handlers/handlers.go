package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"portfolio.dev/internal/analytics"
	"portfolio.dev/internal/content"
	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/services"
)

// SearchStore records filter queries and reports the most common ones
type SearchStore interface {
	Record(ctx context.Context, e analytics.SearchEvent) error
	TopQueries(ctx context.Context, limit int) ([]analytics.QueryCount, error)
	ZeroResultQueries(ctx context.Context, limit int) ([]analytics.QueryCount, error)
}

// Deps is everything the routes need. Metrics and Searches are optional.
type Deps struct {
	Content         *content.Content
	DefaultLanguage i18n.Language
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
	Searches        SearchStore
	Now             func() time.Time
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) (http.Handler, error) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.DefaultLanguage == "" {
		d.DefaultLanguage = i18n.DefaultLanguage
	}

	localizer, err := d.Content.Localizer()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(chimw.Compress(5))

	// Initialize services
	projectService := services.NewProjectService(d.Content.Catalog())
	var observers []services.ViewObserver
	if d.Metrics != nil {
		observers = append(observers, d.Metrics)
	}
	views := &viewFactory{
		projects:        projectService,
		localizer:       localizer,
		defaultLanguage: d.DefaultLanguage,
		observers:       observers,
		searches:        d.Searches,
		logger:          d.Logger,
		now:             d.Now,
	}

	// Initialize handlers
	pageHandler := NewPageHandler(views, d.Content.Profile, d.Now)
	projectHandler := NewProjectHandler(projectService, views)
	languageHandler := NewLanguageHandler(localizer, d.DefaultLanguage)
	navigationHandler := NewNavigationHandler(localizer, d.DefaultLanguage)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/partials/projects", pageHandler.ProjectList)
	r.Get("/lang/{lang}", languageHandler.Switch)
	r.Get("/go/{section}", navigationHandler.GoTo)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{title}", projectHandler.GetProject)
		r.Get("/i18n/{lang}", languageHandler.GetDictionary)
		r.Get("/sections", navigationHandler.ListSections)

		if d.Searches != nil {
			searchHandler := NewSearchHandler(d.Searches)
			r.Get("/search/top", searchHandler.TopQueries)
		}

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(page.Static())))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
