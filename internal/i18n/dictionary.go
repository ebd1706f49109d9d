package i18n

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key names one localized display string.
type Key string

const (
	NavHome       Key = "nav.home"
	NavAbout      Key = "nav.about"
	NavSkills     Key = "nav.skills"
	NavProjects   Key = "nav.projects"
	NavExperience Key = "nav.experience"
	NavActivities Key = "nav.activities"
	NavContact    Key = "nav.contact"

	HeroGreeting Key = "hero.greeting"

	AboutSubtitle      Key = "section.about.subtitle"
	SkillsSubtitle     Key = "section.skills.subtitle"
	ProjectsSubtitle   Key = "section.projects.subtitle"
	ExperienceSubtitle Key = "section.experience.subtitle"
	ActivitiesSubtitle Key = "section.activities.subtitle"
	ContactSubtitle    Key = "section.contact.subtitle"

	SearchPlaceholder Key = "search.placeholder"
	SearchSubmit      Key = "search.submit"

	FilterAll        Key = "filter.all"
	FilterFeatured   Key = "filter.featured"
	FilterInProgress Key = "filter.in_progress"
	FilterPrototype  Key = "filter.prototype"

	ProjectsEmpty Key = "projects.empty"
	ProjectsCount Key = "projects.count"

	FooterBuiltWith Key = "footer.built_with"
	FooterRights    Key = "footer.rights"

	LanguageToggle Key = "language.toggle"
)

var canonicalKeys = []Key{
	NavHome, NavAbout, NavSkills, NavProjects, NavExperience, NavActivities, NavContact,
	HeroGreeting,
	AboutSubtitle, SkillsSubtitle, ProjectsSubtitle, ExperienceSubtitle, ActivitiesSubtitle, ContactSubtitle,
	SearchPlaceholder, SearchSubmit,
	FilterAll, FilterFeatured, FilterInProgress, FilterPrototype,
	ProjectsEmpty, ProjectsCount,
	FooterBuiltWith, FooterRights,
	LanguageToggle,
}

// pluralKeys may hold "singular|plural" forms, selected by the first
// argument to Sprintf.
var pluralKeys = []Key{ProjectsCount}

// Keys returns the canonical key set every dictionary must define.
func Keys() []Key {
	return slices.Clone(canonicalKeys)
}

// Dictionary is the complete set of display strings for one language.
type Dictionary struct {
	lang    Language
	entries map[Key]string
	catalog catalog.Catalog
}

// Language reports which language the dictionary belongs to.
func (d Dictionary) Language() Language {
	return d.lang
}

// T returns the string for key.
func (d Dictionary) T(key Key) string {
	return d.entries[key]
}

// Sprintf formats the entry for key with locale-aware number formatting and
// plural selection.
func (d Dictionary) Sprintf(key Key, args ...any) string {
	if d.catalog == nil {
		return message.NewPrinter(d.lang.Tag()).Sprintf(d.entries[key], args...)
	}
	return message.NewPrinter(d.lang.Tag(), message.Catalog(d.catalog)).Sprintf(string(key), args...)
}

// Map returns a copy of the entries keyed by their string form.
func (d Dictionary) Map() map[string]string {
	out := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		out[string(k)] = v
	}
	return out
}

// KeySetError reports a dictionary whose keys differ from the canonical set.
type KeySetError struct {
	Language Language
	Missing  []Key
	Unknown  []Key
}

func (e *KeySetError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+joinKeys(e.Missing))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown "+joinKeys(e.Unknown))
	}
	return fmt.Sprintf("dictionary %s: %s", e.Language, strings.Join(parts, "; "))
}

func joinKeys(keys []Key) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return strings.Join(out, ", ")
}

// Localizer holds one total dictionary per supported language.
type Localizer struct {
	dictionaries map[Language]Dictionary
}

// NewLocalizer checks every table against the canonical key set and builds
// the dictionaries. All mismatches are reported together.
func NewLocalizer(tables map[Language]map[Key]string) (*Localizer, error) {
	l := &Localizer{dictionaries: make(map[Language]Dictionary, len(tables))}
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	var errs []error
	for _, lang := range Languages() {
		table := tables[lang]
		if err := checkKeySet(lang, table); err != nil {
			errs = append(errs, err)
			continue
		}
		entries := make(map[Key]string, len(table))
		for k, v := range table {
			entries[k] = v
			if err := setMessage(b, lang, k, v); err != nil {
				errs = append(errs, err)
			}
		}
		l.dictionaries[lang] = Dictionary{lang: lang, entries: entries, catalog: b}
	}
	for lang := range tables {
		if !slices.Contains(Languages(), lang) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return l, nil
}

func setMessage(b *catalog.Builder, lang Language, key Key, value string) error {
	one, other, ok := strings.Cut(value, "|")
	if !ok || !slices.Contains(pluralKeys, key) {
		return b.SetString(lang.Tag(), string(key), value)
	}
	err := b.Set(lang.Tag(), string(key), plural.Selectf(1, "%d",
		plural.One, one,
		plural.Other, other,
	))
	if err != nil {
		return fmt.Errorf("dictionary %s: %s: %w", lang, key, err)
	}
	return nil
}

func checkKeySet(lang Language, table map[Key]string) error {
	var missing, unknown []Key
	for _, k := range canonicalKeys {
		if _, ok := table[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range table {
		if !slices.Contains(canonicalKeys, k) {
			unknown = append(unknown, k)
		}
	}
	if len(missing) == 0 && len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return &KeySetError{Language: lang, Missing: missing, Unknown: unknown}
}

// Resolve returns the dictionary for lang. Values outside the supported
// set resolve to the default language.
func (l *Localizer) Resolve(lang Language) Dictionary {
	if d, ok := l.dictionaries[lang]; ok {
		return d
	}
	return l.dictionaries[DefaultLanguage]
}
