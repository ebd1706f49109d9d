// Package export renders the portfolio to plain files that any static host
// can serve: one page per language and category, the stylesheet, and the
// catalog and dictionaries as JSON.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/services"
)

// PagePath is the URL path of the exported page for a language and category.
// The default language lives at the root.
func PagePath(lang i18n.Language, c models.Category) string {
	p := "/"
	if lang != i18n.DefaultLanguage {
		p += string(lang) + "/"
	}
	if c != models.CategoryAll {
		p += "category/" + c.Slug() + "/"
	}
	return p
}

// Site writes the whole site under dir and returns the written paths,
// relative to dir, in the order they were created.
func Site(dir string, c *content.Content, year int) ([]string, error) {
	localizer, err := c.Localizer()
	if err != nil {
		return nil, err
	}
	projects := services.NewProjectService(c.Catalog())

	w := &writer{root: dir}

	for _, lang := range i18n.Languages() {
		for _, cat := range models.Categories() {
			view := services.NewSession(projects, localizer, services.State{
				Category: cat,
				Language: lang,
			}).View()

			data := page.Build(view, c.Profile, page.Options{
				Static:     true,
				ToggleHref: PagePath(lang.Other(), cat),
				CategoryHref: func(other models.Category) string {
					return PagePath(lang, other) + "#projects"
				},
				Year: year,
			})

			var buf bytes.Buffer
			if err := page.Render(&buf, data); err != nil {
				return w.files, err
			}
			if err := w.write(path.Join(PagePath(lang, cat), "index.html"), buf.Bytes()); err != nil {
				return w.files, err
			}
		}

		d := localizer.Resolve(lang)
		if err := w.writeJSON(path.Join("i18n", string(lang)+".json"), d.Map()); err != nil {
			return w.files, err
		}
	}

	if err := w.writeJSON("projects.json", projects.GetAll()); err != nil {
		return w.files, err
	}

	err = fs.WalkDir(page.Static(), ".", func(p string, e fs.DirEntry, err error) error {
		if err != nil || e.IsDir() {
			return err
		}
		data, err := fs.ReadFile(page.Static(), p)
		if err != nil {
			return err
		}
		return w.write(path.Join("static", p), data)
	})
	return w.files, err
}

type writer struct {
	root  string
	files []string
}

func (w *writer) write(name string, data []byte) error {
	rel := filepath.FromSlash(path.Clean("/" + name)[1:])
	full := filepath.Join(w.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	w.files = append(w.files, filepath.ToSlash(rel))
	return nil
}

func (w *writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return w.write(name, data)
}
