package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/services"
)

// PageHandler renders the HTML document and the project list fragment
type PageHandler struct {
	views   *viewFactory
	profile models.Profile
	now     func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(views *viewFactory, profile models.Profile, now func() time.Time) *PageHandler {
	return &PageHandler{views: views, profile: profile, now: now}
}

// Home handles GET /. A submitted search lands here and is recorded.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, page.Render, true)
}

// ProjectList handles GET /partials/projects, the fragment swapped in as the
// visitor types. Its queries are often unfinished words and are not recorded.
func (h *PageHandler) ProjectList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, page.RenderProjects, false)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, fn func(io.Writer, page.Data) error, record bool) {
	view, err := h.views.fromRequest(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record {
		h.views.recordSearch(r, view)
	}
	data := page.Build(view, h.profile, page.Options{
		ToggleHref: toggleHref(view),
		Year:       h.now().Year(),
	})

	var buf bytes.Buffer
	if err := fn(&buf, data); err != nil {
		h.views.logger.ErrorContext(r.Context(), "render failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "Accept-Language, Cookie")
	_, _ = buf.WriteTo(w)
}

func toggleHref(v services.View) string {
	return page.QueryHref(v.State.Query, v.State.Category, v.State.Language.Other())
}
