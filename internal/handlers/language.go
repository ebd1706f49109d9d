package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/i18n"
)

// LanguageHandler serves dictionaries and the language toggle
type LanguageHandler struct {
	localizer       *i18n.Localizer
	defaultLanguage i18n.Language
}

// NewLanguageHandler creates a new LanguageHandler
func NewLanguageHandler(l *i18n.Localizer, defaultLanguage i18n.Language) *LanguageHandler {
	return &LanguageHandler{localizer: l, defaultLanguage: defaultLanguage}
}

type dictionaryResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

// GetDictionary handles GET /api/i18n/{lang}
func (h *LanguageHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(chi.URLParam(r, "lang"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	d := h.localizer.Resolve(lang)
	respondJSON(w, http.StatusOK, dictionaryResponse{
		Language: string(d.Language()),
		Messages: d.Map(),
	})
}

// Switch handles GET /lang/{lang}: it stores the choice and sends the visitor
// back to the page they came from. Unknown values select the default.
func (h *LanguageHandler) Switch(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(chi.URLParam(r, "lang"))
	if err != nil {
		lang = h.defaultLanguage
	}
	setLanguageCookie(w, lang)
	http.Redirect(w, r, localRedirect(r.URL.Query().Get("next"), lang), http.StatusSeeOther)
}

// localRedirect keeps redirects on this site and drops any stale lang
// parameter so the cookie wins.
func localRedirect(next string, lang i18n.Language) string {
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	q := u.Query()
	if q.Has(LangParam) {
		q.Set(LangParam, string(lang))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
