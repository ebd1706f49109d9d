package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrProjectNotFound is returned when a title lookup misses the catalog.
var ErrProjectNotFound = errors.New("project not found")

// ErrUnknownCategory is returned when a category value is outside the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Highlight is the optional status tag on a project
type Highlight string

const (
	HighlightNone       Highlight = ""
	HighlightFeatured   Highlight = "Featured"
	HighlightInProgress Highlight = "In Progress"
	HighlightPrototype  Highlight = "Prototype"
)

// Valid reports whether h is untagged or one of the known tags
func (h Highlight) Valid() bool {
	switch h {
	case HighlightNone, HighlightFeatured, HighlightInProgress, HighlightPrototype:
		return true
	}
	return false
}

// Category is the project list selector: All or one specific highlight
type Category string

const (
	CategoryAll        Category = "All"
	CategoryFeatured   Category = Category(HighlightFeatured)
	CategoryInProgress Category = Category(HighlightInProgress)
	CategoryPrototype  Category = Category(HighlightPrototype)
)

// Categories lists the selector values in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryFeatured, CategoryInProgress, CategoryPrototype}
}

// Slug is the URL form of the category, e.g. "in-progress".
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Matches reports whether a project tagged h belongs to the category.
// Untagged projects only ever match All.
func (c Category) Matches(h Highlight) bool {
	return c == CategoryAll || Highlight(c) == h
}

// ParseCategory accepts a display value or slug, case-insensitively.
// The empty string selects All.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Link is a labelled outbound URL attached to a project
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Project represents a portfolio project
type Project struct {
	Title        string    `json:"title" yaml:"title"`
	Summary      string    `json:"summary" yaml:"summary"`
	Technologies []string  `json:"technologies" yaml:"technologies"`
	Highlight    Highlight `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Links        []Link    `json:"links,omitempty" yaml:"links,omitempty"`
}

// SearchText is the lowercase haystack that queries are matched against.
func (p Project) SearchText() string {
	parts := make([]string, 0, len(p.Technologies)+2)
	parts = append(parts, p.Title, p.Summary)
	parts = append(parts, p.Technologies...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Catalog is the ordered, read-only list of projects
type Catalog struct {
	projects []Project
}

// NewCatalog copies projects into a catalog, keeping their order.
func NewCatalog(projects []Project) *Catalog {
	return &Catalog{projects: cloneProjects(projects)}
}

// Projects returns a deep copy of the catalog in insertion order.
func (c *Catalog) Projects() []Project {
	return cloneProjects(c.projects)
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// ByTitle returns the project with the given title
func (c *Catalog) ByTitle(title string) (Project, error) {
	for _, p := range c.projects {
		if p.Title == title {
			return p.clone(), nil
		}
	}
	return Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, title)
}

// clone copies the slices a Project shares with its source.
func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Links = slices.Clone(p.Links)
	return p
}

func cloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}
