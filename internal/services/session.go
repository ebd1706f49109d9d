package services

import (
	"portfolio.dev/internal/i18n"
	"portfolio.dev/internal/models"
)

// State is the transient (query, category, language) triple of one viewer.
type State struct {
	Query    string
	Category models.Category
	Language i18n.Language
}

// DefaultState is the state of a fresh page load.
func DefaultState() State {
	return State{Category: models.CategoryAll, Language: i18n.DefaultLanguage}
}

// View is everything the presentation layer renders for a State.
type View struct {
	State      State
	Projects   []models.Project
	Dictionary i18n.Dictionary
}

// Empty reports that filtering ran and matched nothing.
func (v View) Empty() bool {
	return v.Projects != nil && len(v.Projects) == 0
}

// EmptyMessage returns the localized empty-state string, or "" when the
// view has results.
func (v View) EmptyMessage() string {
	if !v.Empty() {
		return ""
	}
	return v.Dictionary.T(i18n.ProjectsEmpty)
}

// ViewObserver is notified after every recomputation.
type ViewObserver interface {
	ObserveView(View)
}

// ViewObserverFunc adapts a function to ViewObserver.
type ViewObserverFunc func(View)

func (f ViewObserverFunc) ObserveView(v View) { f(v) }

// Session owns one viewer's State and recomputes the View synchronously
// after every mutation. It is not safe for concurrent use.
type Session struct {
	projects  *ProjectService
	localizer *i18n.Localizer
	state     State
	view      View
	observers []ViewObserver
}

// NewSession computes the view for initial and reports it to observers.
func NewSession(projects *ProjectService, localizer *i18n.Localizer, initial State, observers ...ViewObserver) *Session {
	s := &Session{
		projects:  projects,
		localizer: localizer,
		state:     initial,
		observers: observers,
	}
	s.recompute()
	return s
}

// Subscribe registers an observer for subsequent recomputations.
func (s *Session) Subscribe(o ViewObserver) {
	s.observers = append(s.observers, o)
}

// State returns the current filter state
func (s *Session) State() State {
	return s.state
}

// View returns the last computed view
func (s *Session) View() View {
	return s.view
}

// SetQuery replaces the search text
func (s *Session) SetQuery(q string) View {
	s.state.Query = q
	return s.recompute()
}

// SetCategory replaces the category selector
func (s *Session) SetCategory(c models.Category) View {
	s.state.Category = c
	return s.recompute()
}

// SetLanguage switches the dictionary used by every label
func (s *Session) SetLanguage(l i18n.Language) View {
	s.state.Language = l
	return s.recompute()
}

// ToggleLanguage flips between EN and JP
func (s *Session) ToggleLanguage() View {
	return s.SetLanguage(s.state.Language.Other())
}

func (s *Session) recompute() View {
	s.view = View{
		State:      s.state,
		Projects:   s.projects.Filter(s.state.Query, s.state.Category),
		Dictionary: s.localizer.Resolve(s.state.Language),
	}
	for _, o := range s.observers {
		o.ObserveView(s.view)
	}
	return s.view
}
