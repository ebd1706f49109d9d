// Package page turns a computed view into the HTML document and the
// project-list fragment served on each keystroke.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("page").ParseFS(templateFS, "templates/*.html.tmpl"))

// Static returns the stylesheet and other assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NavItem is one entry of the navigation bar
type NavItem struct {
	ID    models.Section
	Label string
}

// CategoryOption is one button of the category selector
type CategoryOption struct {
	Slug   string
	Label  string
	Active bool
	Href   string
}

// ProjectCard is a project plus its localized highlight label
type ProjectCard struct {
	models.Project
	HighlightLabel string
}

// Options carries the parts of the page that depend on where it is served.
type Options struct {
	// Static disables the search form for exported pages.
	Static bool
	// ToggleHref links to the same page in the other language.
	ToggleHref string
	// CategoryHref builds the link for a category button; nil keeps the
	// default query-string form.
	CategoryHref func(c models.Category) string
	Year         int
}

// Data is the template input for the full page and the fragment
type Data struct {
	Lang         string
	T            map[string]string
	ToggleLabel  string
	ToggleHref   string
	Static       bool
	Nav          []NavItem
	Profile      models.Profile
	Query        string
	Category     string
	Categories   []CategoryOption
	Projects     []ProjectCard
	Empty        bool
	EmptyMessage string
	CountLabel   string
	Year         int
	// OOB marks the header toggle and category links for out-of-band swap
	// when they ride along with the project list fragment.
	OOB bool
}

// CategoryKey maps a category to its dictionary label
func CategoryKey(c models.Category) i18n.Key {
	switch c {
	case models.CategoryFeatured:
		return i18n.FilterFeatured
	case models.CategoryInProgress:
		return i18n.FilterInProgress
	case models.CategoryPrototype:
		return i18n.FilterPrototype
	}
	return i18n.FilterAll
}

// SectionKey maps a navigation target to its dictionary label
func SectionKey(s models.Section) i18n.Key {
	switch s {
	case models.SectionAbout:
		return i18n.NavAbout
	case models.SectionSkills:
		return i18n.NavSkills
	case models.SectionProjects:
		return i18n.NavProjects
	case models.SectionExperience:
		return i18n.NavExperience
	case models.SectionActivities:
		return i18n.NavActivities
	case models.SectionContact:
		return i18n.NavContact
	}
	return i18n.NavHome
}

// Build assembles template data from a view
func Build(v services.View, profile models.Profile, opts Options) Data {
	d := v.Dictionary
	data := Data{
		Lang:         string(d.Language()),
		T:            d.Map(),
		ToggleLabel:  d.T(i18n.LanguageToggle),
		ToggleHref:   opts.ToggleHref,
		Static:       opts.Static,
		Profile:      profile,
		Query:        v.State.Query,
		Category:     v.State.Category.Slug(),
		Empty:        v.Empty(),
		EmptyMessage: v.EmptyMessage(),
		CountLabel:   d.Sprintf(i18n.ProjectsCount, len(v.Projects)),
		Year:         opts.Year,
	}

	for _, s := range models.Sections() {
		data.Nav = append(data.Nav, NavItem{ID: s, Label: d.T(SectionKey(s))})
	}

	categoryHref := opts.CategoryHref
	if categoryHref == nil {
		categoryHref = func(c models.Category) string {
			return QueryHref(v.State.Query, c, d.Language()) + "#projects"
		}
	}
	for _, c := range models.Categories() {
		data.Categories = append(data.Categories, CategoryOption{
			Slug:   c.Slug(),
			Label:  d.T(CategoryKey(c)),
			Active: c == v.State.Category,
			Href:   categoryHref(c),
		})
	}

	data.Projects = make([]ProjectCard, 0, len(v.Projects))
	for _, p := range v.Projects {
		card := ProjectCard{Project: p}
		if p.Highlight != models.HighlightNone {
			card.HighlightLabel = d.T(CategoryKey(models.Category(p.Highlight)))
		}
		data.Projects = append(data.Projects, card)
	}
	return data
}

// QueryHref is the relative URL that reproduces a filter state
func QueryHref(query string, c models.Category, lang i18n.Language) string {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if c != models.CategoryAll {
		q.Set("category", c.Slug())
	}
	q.Set("lang", string(lang))
	return "/?" + q.Encode()
}

// Render writes the full HTML document
func Render(w io.Writer, data Data) error {
	if err := templates.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderProjects writes the project list fragment followed by the language
// toggle and category links, so a keystroke refresh keeps every link that
// encodes the filter state current.
func RenderProjects(w io.Writer, data Data) error {
	data.OOB = true
	if err := templates.ExecuteTemplate(w, "partial", data); err != nil {
		return fmt.Errorf("render projects: %w", err)
	}
	return nil
}
