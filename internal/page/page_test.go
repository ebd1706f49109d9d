package page

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

func newSession(t *testing.T) (*services.Session, models.Profile) {
	t.Helper()
	c, err := content.Load()
	require.NoError(t, err)
	l, err := c.Localizer()
	require.NoError(t, err)
	return services.NewSession(services.NewProjectService(c.Catalog()), l, services.DefaultState()), c.Profile
}

func TestBuild_Labels(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.SetCategory(models.CategoryInProgress), profile, Options{Year: 2026})

	assert.Equal(t, "en", data.Lang)
	assert.Equal(t, "in-progress", data.Category)
	require.Len(t, data.Nav, len(models.Sections()))
	assert.Equal(t, "About", data.Nav[1].Label)

	require.Len(t, data.Categories, 4)
	assert.True(t, data.Categories[2].Active)
	assert.Equal(t, "/?category=prototype&lang=en#projects", data.Categories[3].Href)

	for _, p := range data.Projects {
		assert.Equal(t, "In Progress", p.HighlightLabel)
	}
	assert.Equal(t, "2 projects", data.CountLabel)
}

func TestBuild_Japanese(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.SetLanguage(i18n.JP), profile, Options{})

	assert.Equal(t, "ja", data.Lang)
	assert.Equal(t, "English", data.ToggleLabel)
	assert.Equal(t, "プロジェクト", data.Nav[3].Label)
	assert.Equal(t, "すべて", data.Categories[0].Label)
}

func TestRender_FullPage(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.View(), profile, Options{Year: 2026, ToggleHref: "/?lang=ja"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))
	html := buf.String()

	for _, id := range models.Sections() {
		assert.Contains(t, html, `id="`+string(id)+`"`)
	}
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "Portfolio Website")
	assert.Contains(t, html, `hx-get="/partials/projects"`)
	assert.Contains(t, html, "2026")
	assert.NotContains(t, html, "No projects match")
}

func TestRender_StaticHidesSearch(t *testing.T) {
	s, profile := newSession(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Build(s.View(), profile, Options{Static: true})))
	assert.NotContains(t, buf.String(), "hx-get")
	assert.NotContains(t, buf.String(), `name="q"`)
}

func TestRender_StaticKeepsCategoryLinks(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.View(), profile, Options{
		Static: true,
		CategoryHref: func(c models.Category) string {
			return "/category/" + c.Slug() + "/"
		},
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))
	html := buf.String()
	assert.Contains(t, html, `id="project-filters"`)
	assert.Contains(t, html, `href="/category/prototype/"`)
	assert.NotContains(t, html, "hx-swap-oob")
}

func TestRenderProjects_IncludesOutOfBandLinks(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.SetQuery("rust"), profile, Options{ToggleHref: "/?lang=ja&q=rust"})

	var buf bytes.Buffer
	require.NoError(t, RenderProjects(&buf, data))
	html := buf.String()
	assert.Contains(t, html, `id="lang-toggle"`)
	assert.Contains(t, html, `href="/?lang=ja&amp;q=rust"`)
	assert.Contains(t, html, `id="project-filters" class="project-filters" hx-swap-oob="true"`)
	assert.Contains(t, html, "1 project<")
	assert.NotContains(t, html, "<html")
}

func TestRenderProjects_EmptyState(t *testing.T) {
	s, profile := newSession(t)
	data := Build(s.SetQuery("nonexistent-term-xyz"), profile, Options{})

	var buf bytes.Buffer
	require.NoError(t, RenderProjects(&buf, data))
	assert.Contains(t, buf.String(), "No projects match your search.")
	assert.NotContains(t, buf.String(), "project-card")

	buf.Reset()
	s.SetLanguage(i18n.JP)
	require.NoError(t, RenderProjects(&buf, Build(s.View(), profile, Options{})))
	assert.Contains(t, buf.String(), "該当するプロジェクトはありません。")
}

func TestQueryHref(t *testing.T) {
	assert.Equal(t, "/?lang=en", QueryHref("", models.CategoryAll, i18n.EN))
	assert.Equal(t, "/?category=featured&lang=ja&q=web+audio", QueryHref("web audio", models.CategoryFeatured, i18n.JP))
}

func TestStatic(t *testing.T) {
	_, err := fs.Stat(Static(), "app.css")
	assert.NoError(t, err)
}
