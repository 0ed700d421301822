package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

// RadioGroup is a set of labeled options of which at most one is checked.
// Moving the cursor does not check an option; space or a digit does.
type RadioGroup struct {
	Labels  []string
	Values  []int
	Cursor  int
	Checked int // -1 when nothing is checked
	Locked  bool
}

// NewRadioGroup creates a group with nothing checked. labels and values are
// parallel.
func NewRadioGroup(labels []string, values []int) RadioGroup {
	return RadioGroup{
		Labels:  labels,
		Values:  values,
		Checked: -1,
	}
}

// Update handles keyboard navigation and checking.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	if r.Locked {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Labels)-1 {
			r.Cursor++
		}
	case "space", " ", "x":
		r.Checked = r.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(r.Labels) {
				r.Cursor = i
				r.Checked = i
			}
		}
	}

	return r, nil
}

// Selection returns the value of the checked option, or ok=false when
// nothing is checked.
func (r RadioGroup) Selection() (value int, ok bool) {
	for i := range r.Labels {
		if i == r.Checked && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return 0, false
}

// View renders the options.
func (r RadioGroup) View() string {
	var s string
	for i, label := range r.Labels {
		mark := "( )"
		if i == r.Checked {
			mark = "(•)"
		}
		prefix := "  "
		if i == r.Cursor && !r.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d %s  %s", prefix, i+1, mark, label)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == r.Checked:
			style = theme.Selected
		case i == r.Cursor && !r.Locked:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
