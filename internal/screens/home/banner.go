package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

const bannerArt = `
 ╔╦╗╦ ╦╦═╗╔═╗╔╗╔╔═╗╔═╗  ╔═╗ ╦ ╦╦╔═╗
  ║ ╠═╣╠╦╝║ ║║║║║╣ ╚═╗  ║═╬╗║ ║║╔═╝
  ╩ ╩ ╩╩╚═╚═╝╝╚╝╚═╝╚═╝  ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "T H R O N E S   Q U I Z"

// RenderBanner returns the title banner in the primary color. Narrow
// terminals get a one-line fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
