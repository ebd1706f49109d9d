package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
)

// NavigationHandler exposes the page's section anchors
type NavigationHandler struct {
	localizer       *i18n.Localizer
	defaultLanguage i18n.Language
}

// NewNavigationHandler creates a new NavigationHandler
func NewNavigationHandler(l *i18n.Localizer, defaultLanguage i18n.Language) *NavigationHandler {
	return &NavigationHandler{localizer: l, defaultLanguage: defaultLanguage}
}

type sectionResponse struct {
	ID    models.Section `json:"id"`
	Label string         `json:"label"`
	Href  string         `json:"href"`
}

// ListSections handles GET /api/sections
func (h *NavigationHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	lang, _ := resolveLanguage(r, h.defaultLanguage)
	d := h.localizer.Resolve(lang)

	out := make([]sectionResponse, 0, len(models.Sections()))
	for _, s := range models.Sections() {
		out = append(out, sectionResponse{
			ID:    s,
			Label: d.T(page.SectionKey(s)),
			Href:  "/#" + string(s),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// GoTo handles GET /go/{section}. Known sections redirect to their anchor;
// anything else lands on the top of the page.
func (h *NavigationHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	target := url.URL{Path: "/", RawQuery: r.URL.RawQuery}
	if s, ok := models.ParseSection(chi.URLParam(r, "section")); ok {
		target.Fragment = string(s)
	}
	http.Redirect(w, r, target.String(), http.StatusFound)
}
