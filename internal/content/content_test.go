package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
)

func TestLoad_EmbeddedContentIsValid(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.NotEmpty(t, c.Projects)
	assert.NotEmpty(t, c.Profile.Name)
	assert.Len(t, c.Dictionaries, 2)

	l, err := c.Localizer()
	require.NoError(t, err)
	assert.Equal(t, "Projects", l.Resolve(i18n.EN).T(i18n.NavProjects))
	assert.Equal(t, "プロジェクト", l.Resolve(i18n.JP).T(i18n.NavProjects))
}

func TestLoad_EmbeddedDictionariesShareKeys(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	en := c.Dictionaries[i18n.EN]
	ja := c.Dictionaries[i18n.JP]
	require.Len(t, ja, len(en))
	for k := range en {
		assert.Contains(t, ja, k)
	}
}

func TestLoad_CatalogKeepsFileOrder(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Website", c.Catalog().Projects()[0].Title)
}

const validCatalog = `
projects:
  - title: One
    summary: First
    technologies: [Go]
    highlight: Featured
  - title: Two
    summary: Second
    technologies: [Rust]
`

const validProfile = `
name: Tester
contacts:
  - kind: email
    label: Email
    url: mailto:test@example.com
`

func localeYAML(lang string, keys []i18n.Key) string {
	out := "language: " + lang + "\nmessages:\n"
	for _, k := range keys {
		out += "  " + string(k) + ": " + lang + "\n"
	}
	return out
}

func testFS(catalog string) fstest.MapFS {
	return fstest.MapFS{
		"catalog.yaml":    {Data: []byte(catalog)},
		"profile.yaml":    {Data: []byte(validProfile)},
		"locales/en.yaml": {Data: []byte(localeYAML("en", i18n.Keys()))},
		"locales/ja.yaml": {Data: []byte(localeYAML("ja", i18n.Keys()))},
	}
}

func TestLoadFS_Valid(t *testing.T) {
	c, err := LoadFS(testFS(validCatalog))
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, models.HighlightFeatured, c.Projects[0].Highlight)
	assert.Equal(t, models.HighlightNone, c.Projects[1].Highlight)
}

func TestValidate_ReportsAllDefects(t *testing.T) {
	fsys := testFS(`
projects:
  - title: One
    summary: First
    technologies: [Go]
  - title: One
    summary: Again
    technologies: []
    highlight: Archived
    links:
      - label: Broken
        url: ftp://example.com
`)
	fsys["locales/ja.yaml"] = &fstest.MapFile{Data: []byte(localeYAML("ja", i18n.Keys()[1:]))}

	c, err := LoadFS(fsys)
	require.NoError(t, err)

	err = c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
	msg := err.Error()
	assert.Contains(t, msg, "duplicate title")
	assert.Contains(t, msg, "at least one technology")
	assert.Contains(t, msg, `unknown highlight "Archived"`)
	assert.Contains(t, msg, "unsupported scheme")

	var kse *i18n.KeySetError
	require.True(t, errors.As(err, &kse))
	assert.Equal(t, i18n.JP, kse.Language)
	assert.Equal(t, []i18n.Key{i18n.Keys()[0]}, kse.Missing)
}

func TestLoadFS_MissingFiles(t *testing.T) {
	fsys := testFS(validCatalog)
	delete(fsys, "profile.yaml")
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "read profile.yaml")

	fsys = testFS(validCatalog)
	delete(fsys, "locales/en.yaml")
	delete(fsys, "locales/ja.yaml")
	_, err = LoadFS(fsys)
	assert.ErrorContains(t, err, "no locale files")
}

func TestLoadFS_UnsupportedLanguage(t *testing.T) {
	fsys := testFS(validCatalog)
	fsys["locales/fr.yaml"] = &fstest.MapFile{Data: []byte(localeYAML("fr", i18n.Keys()))}
	_, err := LoadFS(fsys)
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestLoadFS_DuplicateLanguage(t *testing.T) {
	fsys := testFS(validCatalog)
	fsys["locales/jp.yaml"] = &fstest.MapFile{Data: []byte(localeYAML("ja", i18n.Keys()))}
	_, err := LoadFS(fsys)
	assert.ErrorContains(t, err, "defined twice")
}

func TestLoadFS_MalformedYAML(t *testing.T) {
	_, err := LoadFS(testFS("projects: [\n"))
	assert.ErrorContains(t, err, "parse catalog.yaml")
}

func TestCheckURL(t *testing.T) {
	assert.NoError(t, checkURL("https://example.com/x"))
	assert.NoError(t, checkURL("mailto:me@example.com"))
	assert.Error(t, checkURL("https://"))
	assert.Error(t, checkURL("mailto:"))
	assert.Error(t, checkURL("javascript:alert(1)"))
}
