package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, len(m.Items)-1)
	case "pgup":
		m.Selected = max(m.Selected-10, 0)
	case "pgdown":
		m.Selected = min(m.Selected+10, len(m.Items)-1)
	case "home":
		m.Selected = 0
	case "end":
		m.Selected = len(m.Items) - 1
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders every item.
func (m Menu) View() string {
	return m.ViewWindow(len(m.Items))
}

// ViewWindow renders at most rows items, scrolled so the selection stays
// visible.
func (m Menu) ViewWindow(rows int) string {
	if rows <= 0 || len(m.Items) == 0 {
		return ""
	}
	start := 0
	if m.Selected >= rows {
		start = m.Selected - rows + 1
	}
	end := min(start+rows, len(m.Items))

	var s string
	for i := start; i < end; i++ {
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ "+m.Items[i].Label) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("    "+m.Items[i].Label) + "\n"
		}
	}
	return s
}
