package editor

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/portrait"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

const labelWidth = 12

func (s *EditorScreen) View(width, height int) string {
	if s.loadErr != nil {
		return layout.RenderError("Could not load character: "+s.loadErr.Error(), true, width, height)
	}
	if s.loading || s.char == nil {
		return layout.RenderLoading("Fetching the character...", width, height)
	}

	form := s.renderForm()
	if s.opts.Portraits == nil {
		return components.Center(form, width, height)
	}

	return components.Center(lipgloss.JoinHorizontal(lipgloss.Top, s.renderPortrait(), "    ", form), width, height)
}

// renderPortrait falls back to the full name while the image is missing.
func (s *EditorScreen) renderPortrait() string {
	if s.portrait != "" {
		return s.portrait
	}
	return portrait.Placeholder(s.char.FullName, s.opts.PortraitWidth)
}

func (s *EditorScreen) renderForm() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(s.char.FullName))
	if s.char.Title != "" || s.char.Family != "" {
		sb.WriteString("\n")
		sb.WriteString(theme.Subtitle.Render(strings.Trim(s.char.Title+" · "+s.char.Family, " ·")))
	}
	sb.WriteString("\n\n")

	for _, in := range s.inputs {
		sb.WriteString(in.View(labelWidth))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(s.save.View())
	sb.WriteString("  ")

	switch {
	case s.saving:
		sb.WriteString(theme.Hint.Render("Saving..."))
	case s.saveErr != nil:
		sb.WriteString(theme.ErrorText.Render("Save failed: " + s.saveErr.Error()))
	case s.saved:
		sb.WriteString(theme.Correct.Render("Saved."))
	}
	return sb.String()
}
