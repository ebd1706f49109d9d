// Package content loads the static portfolio content: the project catalog,
// the profile, and one string table per language. The default set is
// embedded in the binary; a directory with the same layout can replace it.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
)

//go:embed data/catalog.yaml data/profile.yaml data/locales/*.yaml
var embedded embed.FS

// ErrInvalidContent wraps every content-authoring defect found by Validate.
var ErrInvalidContent = errors.New("invalid content")

// Content is the full set of static configuration for one site.
type Content struct {
	Projects     []models.Project
	Profile      models.Profile
	Dictionaries map[i18n.Language]map[i18n.Key]string
}

type catalogFile struct {
	Projects []models.Project `yaml:"projects"`
}

type localeFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Load reads the embedded content.
func Load() (*Content, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir reads content from a directory on disk.
func LoadDir(dir string) (*Content, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads catalog.yaml, profile.yaml and locales/*.yaml from fsys.
func LoadFS(fsys fs.FS) (*Content, error) {
	var catalog catalogFile
	if err := readYAML(fsys, "catalog.yaml", &catalog); err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := readYAML(fsys, "profile.yaml", &profile); err != nil {
		return nil, err
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	dictionaries := make(map[i18n.Language]map[i18n.Key]string, len(paths))
	for _, path := range paths {
		var file localeFile
		if err := readYAML(fsys, path, &file); err != nil {
			return nil, err
		}
		lang, err := i18n.ParseLanguage(file.Language)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, exists := dictionaries[lang]; exists {
			return nil, fmt.Errorf("%s: language %q defined twice", path, lang)
		}
		table := make(map[i18n.Key]string, len(file.Messages))
		for k, v := range file.Messages {
			table[i18n.Key(strings.TrimSpace(k))] = v
		}
		dictionaries[lang] = table
	}

	return &Content{
		Projects:     catalog.Projects,
		Profile:      profile,
		Dictionaries: dictionaries,
	}, nil
}

func readYAML(fsys fs.FS, path string, out any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Catalog returns the read-only project catalog
func (c *Content) Catalog() *models.Catalog {
	return models.NewCatalog(c.Projects)
}

// Localizer builds the per-language dictionaries, checking key sets
func (c *Content) Localizer() (*i18n.Localizer, error) {
	return i18n.NewLocalizer(c.Dictionaries)
}

// Validate reports every content-authoring defect at once. These are
// checked before serving or exporting, never while handling a request.
func (c *Content) Validate() error {
	var errs []error
	seen := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		where := fmt.Sprintf("project %d", i)
		if p.Title != "" {
			where = fmt.Sprintf("project %q", p.Title)
		}
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		} else if first, dup := seen[p.Title]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate title (first at index %d)", where, first))
		} else {
			seen[p.Title] = i
		}
		if len(p.Technologies) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one technology is required", where))
		}
		if !p.Highlight.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown highlight %q", where, p.Highlight))
		}
		for _, l := range p.Links {
			if err := checkURL(l.URL); err != nil {
				errs = append(errs, fmt.Errorf("%s: link %q: %w", where, l.Label, err))
			}
		}
	}
	for _, contact := range c.Profile.Contacts {
		if err := checkURL(contact.URL); err != nil {
			errs = append(errs, fmt.Errorf("contact %q: %w", contact.Label, err))
		}
	}
	if _, err := c.Localizer(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("missing host in %q", raw)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("missing address in %q", raw)
		}
	default:
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	return nil
}
