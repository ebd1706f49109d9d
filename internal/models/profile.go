package models

import "strings"

// Section identifies a navigation target on the page
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
	SectionActivities Section = "activities"
	SectionContact    Section = "contact"
)

// Sections returns every navigation target in page order.
func Sections() []Section {
	return []Section{
		SectionHome,
		SectionAbout,
		SectionSkills,
		SectionProjects,
		SectionExperience,
		SectionActivities,
		SectionContact,
	}
}

// ParseSection maps an identifier to a section. "top" is an alias for home.
func ParseSection(id string) (Section, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "top" {
		return SectionHome, true
	}
	for _, s := range Sections() {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

// Experience is one entry of the work history
type Experience struct {
	Role         string   `json:"role" yaml:"role"`
	Organization string   `json:"organization" yaml:"organization"`
	Period       string   `json:"period" yaml:"period"`
	Highlights   []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Activity is a community or side activity
type Activity struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Contact is an outbound contact link (email, source control, social)
type Contact struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Profile holds the biography shown around the project list
type Profile struct {
	Name       string       `json:"name" yaml:"name"`
	Tagline    string       `json:"tagline" yaml:"tagline"`
	About      []string     `json:"about" yaml:"about"`
	Skills     []string     `json:"skills" yaml:"skills"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Activities []Activity   `json:"activities" yaml:"activities"`
	Contacts   []Contact    `json:"contacts" yaml:"contacts"`
}
