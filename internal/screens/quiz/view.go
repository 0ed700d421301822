package quiz

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/thronesquiz/internal/portrait"
	qz "github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.err != nil {
		return layout.RenderError(errorMessage(s.err), retryable(s.err), width, height)
	}
	if s.game.Question() == nil {
		return layout.RenderLoading("Summoning the realm's finest...", width, height)
	}

	cw := components.ContentWidth(width)
	right := s.renderQuestion(cw - s.opts.PortraitWidth - 4)

	var body string
	if s.opts.Portraits != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, s.renderPortrait(), "    ", right)
	} else {
		body = right
	}
	return components.Center(body, width, height)
}

func (s *QuizScreen) renderPortrait() string {
	if s.portrait != "" {
		return s.portrait
	}
	// The placeholder must not give the answer away.
	return portrait.Placeholder("?", s.opts.PortraitWidth)
}

func (s *QuizScreen) renderQuestion(width int) string {
	if width < 24 {
		width = 24
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Who is this?"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimRight(s.choices.View(), "\n"))
	sb.WriteString("\n\n")

	switch {
	case s.loading:
		sb.WriteString(theme.Hint.Render("Loading next question..."))
	case s.last != nil:
		sb.WriteString(renderResult(*s.last))
	default:
		sb.WriteString(theme.Hint.Render("Choose a name, then press Enter."))
	}
	sb.WriteString("\n\n")

	score := s.game.Score()
	sb.WriteString(components.NewProgressBar("Accuracy", score.Accuracy(), true, width).View())
	sb.WriteString("\n")
	sb.WriteString(theme.Hint.Render(fmt.Sprintf("%d answered", score.Total())))

	return sb.String()
}

func renderResult(r result) string {
	if r.verdict == qz.Correct {
		return theme.Correct.Render("✔ Correct! That was " + r.answer + ".")
	}
	return theme.Incorrect.Render("✘ Wrong. That was " + r.answer + ".")
}

func errorMessage(err error) string {
	if errors.Is(err, qz.ErrNoCharacters) {
		return "The realm is empty: the API returned no characters."
	}
	return "Could not load characters: " + err.Error()
}
