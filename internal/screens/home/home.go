package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/router"
	"github.com/abhisek/thronesquiz/internal/screen"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

const tagline = "Who is this? Pick the right name from four."

// HomeScreen is the landing panel with the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	items := []components.MenuItem{
		{Label: "New Game", Action: func() tea.Cmd {
			return func() tea.Msg { return router.NewGameMsg{} }
		}},
		{Label: "Update Character", Action: func() tea.Cmd {
			return func() tea.Msg { return router.ListCharactersMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+N", Description: "New game"},
		{Key: "Ctrl+L", Description: "Characters"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderBanner(cw))
	sub := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(theme.Subtitle.Render(tagline))
	menu := components.Card(strings.TrimRight(h.menu.View(), "\n"), cw)

	return components.Center(strings.Join([]string{title, sub, menu}, "\n\n"), width, height)
}
