package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned for language codes outside EN/JP.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is one of the two supported page languages.
type Language string

const (
	EN Language = "en"
	JP Language = "ja"
)

// DefaultLanguage is used when nothing else selects a language.
const DefaultLanguage = EN

// Languages returns the supported languages in toggle order.
func Languages() []Language {
	return []Language{EN, JP}
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if l == JP {
		return language.Japanese
	}
	return language.English
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == JP {
		return EN
	}
	return JP
}

// Label is the short uppercase code shown on the toggle.
func (l Language) Label() string {
	if l == JP {
		return "JP"
	}
	return "EN"
}

// ParseLanguage accepts "en", "ja" and "jp", case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us", "en-gb":
		return EN, nil
	case "ja", "jp", "ja-jp":
		return JP, nil
	}
	return DefaultLanguage, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string, fallback Language) Language {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Languages()[idx]
}
