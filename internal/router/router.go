package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/thronesquiz/internal/screen"
)

// Panel names the mutually exclusive panels.
type Panel int

const (
	PanelHome Panel = iota
	PanelQuiz
	PanelList
	PanelEdit
)

func (p Panel) String() string {
	switch p {
	case PanelQuiz:
		return "quiz"
	case PanelList:
		return "list"
	case PanelEdit:
		return "edit"
	default:
		return "home"
	}
}

// NewGameMsg asks for a fresh game: score reset, then the quiz panel.
type NewGameMsg struct{}

// ListCharactersMsg asks for the character list panel.
type ListCharactersMsg struct{}

// EditCharacterMsg asks for the edit panel of one character.
type EditCharacterMsg struct {
	ID int
}

// Router holds the single visible panel. There is no history; showing a
// panel discards the previous one.
type Router struct {
	active screen.Screen
	panel  Panel
}

// New creates a Router showing initial as the home panel.
func New(initial screen.Screen) *Router {
	return &Router{active: initial, panel: PanelHome}
}

// Show makes s the only visible panel and runs its Init.
func (r *Router) Show(p Panel, s screen.Screen) tea.Cmd {
	r.active = s
	r.panel = p
	return s.Init()
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Panel returns which panel is visible.
func (r *Router) Panel() Panel {
	return r.panel
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
