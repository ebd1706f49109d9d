package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_DisplayAndSlug(t *testing.T) {
	cases := map[string]Category{
		"":            CategoryAll,
		"All":         CategoryAll,
		"featured":    CategoryFeatured,
		"In Progress": CategoryInProgress,
		"in-progress": CategoryInProgress,
		"PROTOTYPE":   CategoryPrototype,
	}
	for input, want := range cases {
		got, err := ParseCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestCategoryMatches_UntaggedOnlyUnderAll(t *testing.T) {
	assert.True(t, CategoryAll.Matches(HighlightNone))
	assert.True(t, CategoryAll.Matches(HighlightPrototype))
	assert.True(t, CategoryFeatured.Matches(HighlightFeatured))
	assert.False(t, CategoryFeatured.Matches(HighlightNone))
	assert.False(t, CategoryInProgress.Matches(HighlightPrototype))
}

func TestHighlightValid(t *testing.T) {
	assert.True(t, HighlightNone.Valid())
	assert.True(t, HighlightInProgress.Valid())
	assert.False(t, Highlight("Archived").Valid())
}

func TestSearchText_IncludesAllFields(t *testing.T) {
	p := Project{
		Title:        "Ferris Tracker",
		Summary:      "Tracks crabs",
		Technologies: []string{"Rust", "WASM"},
	}
	assert.Equal(t, "ferris tracker tracks crabs rust wasm", p.SearchText())
}

func TestCatalog_IsolatedFromCaller(t *testing.T) {
	src := []Project{{Title: "A"}, {Title: "B"}}
	c := NewCatalog(src)
	src[0].Title = "changed"

	got := c.Projects()
	assert.Equal(t, "A", got[0].Title)

	got[1].Title = "also changed"
	assert.Equal(t, "B", c.Projects()[1].Title)
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_NestedSlicesAreIsolated(t *testing.T) {
	src := []Project{{
		Title:        "A",
		Technologies: []string{"Go"},
		Links:        []Link{{Label: "Source", URL: "https://example.com/a"}},
	}}
	c := NewCatalog(src)

	src[0].Technologies[0] = "COBOL"
	c.Projects()[0].Links[0].URL = "https://changed.example.com"
	byTitle, err := c.ByTitle("A")
	require.NoError(t, err)
	byTitle.Technologies[0] = "Perl"

	got, err := c.ByTitle("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.Technologies)
	assert.Equal(t, "https://example.com/a", got.Links[0].URL)
}

func TestCatalog_ByTitle(t *testing.T) {
	c := NewCatalog([]Project{{Title: "A"}, {Title: "B"}})

	p, err := c.ByTitle("B")
	require.NoError(t, err)
	assert.Equal(t, "B", p.Title)

	_, err = c.ByTitle("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestParseSection(t *testing.T) {
	s, ok := ParseSection("Projects")
	require.True(t, ok)
	assert.Equal(t, SectionProjects, s)

	s, ok = ParseSection("top")
	require.True(t, ok)
	assert.Equal(t, SectionHome, s)

	_, ok = ParseSection("blog")
	assert.False(t, ok)
	assert.Len(t, Sections(), 7)
}
