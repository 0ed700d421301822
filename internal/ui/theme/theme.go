package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: winter steel with a little dragon fire.
var (
	Primary   = lipgloss.Color("#C9A227") // Gold
	Secondary = lipgloss.Color("#5B8DB8") // Winter Blue
	Accent    = lipgloss.Color("#B23A48") // Dragon Red
	Success   = lipgloss.Color("#4CAF50") // Green
	Error     = lipgloss.Color("#E5484D") // Red
	Text      = lipgloss.Color("#ECEFF4") // Snow
	TextDim   = lipgloss.Color("#8A94A6") // Ash
	BgDark    = lipgloss.Color("#11151C") // Night
	BgCard    = lipgloss.Color("#1C2230") // Castle Stone
	Border    = lipgloss.Color("#3B4456") // Iron
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
