package handlers

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"portfolio.dev/internal/analytics"
	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "portfolio_lang"
)

// viewFactory turns a request's query string into a computed view.
type viewFactory struct {
	projects        *services.ProjectService
	localizer       *i18n.Localizer
	defaultLanguage i18n.Language
	observers       []services.ViewObserver
	searches        SearchStore
	logger          *slog.Logger
	now             func() time.Time
}

// fromRequest reads q, category and the language, persists an explicit
// language choice, and returns the view. Only an unknown category fails.
// Searches are not recorded here; see recordSearch.
func (f *viewFactory) fromRequest(w http.ResponseWriter, r *http.Request) (services.View, error) {
	category, err := models.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		return services.View{}, err
	}

	lang, persist := resolveLanguage(r, f.defaultLanguage)
	if persist {
		setLanguageCookie(w, lang)
	}

	state := services.State{
		Query:    r.URL.Query().Get("q"),
		Category: category,
		Language: lang,
	}
	return services.NewSession(f.projects, f.localizer, state, f.observers...).View(), nil
}

// recordSearch logs a non-blank query. Callers skip it for the keystroke
// fragment so partially typed words are not counted.
func (f *viewFactory) recordSearch(r *http.Request, v services.View) {
	if f.searches == nil || strings.TrimSpace(v.State.Query) == "" {
		return
	}
	err := f.searches.Record(r.Context(), analytics.SearchEvent{
		Query:    v.State.Query,
		Category: v.State.Category.Slug(),
		Language: string(v.State.Language),
		Results:  len(v.Projects),
		ClientIP: clientIP(r),
		At:       f.now(),
	})
	if err != nil {
		f.logger.WarnContext(r.Context(), "search not recorded", "error", err)
	}
}

// resolveLanguage picks the language for a request: query parameter, then
// cookie, then Accept-Language, then the fallback. The bool reports whether
// the choice came from the query parameter and should be persisted.
func resolveLanguage(r *http.Request, fallback i18n.Language) (i18n.Language, bool) {
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if lang, err := i18n.ParseLanguage(v); err == nil {
			return lang, true
		}
	}
	if c, err := r.Cookie(LangCookieName); err == nil {
		if lang, err := i18n.ParseLanguage(c.Value); err == nil {
			return lang, false
		}
	}
	return i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), fallback), false
}

func setLanguageCookie(w http.ResponseWriter, lang i18n.Language) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
