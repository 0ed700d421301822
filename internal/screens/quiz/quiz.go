package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/thronesquiz/internal/portrait"
	qz "github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/screen"
	"github.com/abhisek/thronesquiz/internal/thrones"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
)

// Options configures optional collaborators of the quiz screen.
type Options struct {
	// Portraits loads character images; nil disables portraits.
	Portraits     portrait.Loader
	PortraitWidth int
	Logger        *zap.Logger
}

// QuizScreen shows one question at a time and advances on Next.
type QuizScreen struct {
	id   string
	game *qz.Game
	api  thrones.API
	opts Options
	log  *zap.Logger

	loading  bool
	err      error
	choices  components.RadioGroup
	portrait string
	last     *result
}

// result describes the previous answer.
type result struct {
	verdict qz.Verdict
	answer  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen playing game against api.
func New(game *qz.Game, api thrones.API, opts Options) *QuizScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PortraitWidth <= 0 {
		opts.PortraitWidth = 32
	}
	return &QuizScreen{
		id:   uuid.NewString(),
		game: game,
		api:  api,
		opts: opts,
		log:  log.Named("quiz"),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadRound()
}

func (s *QuizScreen) Title() string {
	return "Who is this?"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Ctrl+L", Description: "Characters"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+N", Description: "New game"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case charactersLoadedMsg:
		return s.handleCharacters(msg)
	case portraitLoadedMsg:
		return s.handlePortrait(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	if s.err != nil {
		if msg.String() == "r" && retryable(s.err) {
			return s, s.loadRound()
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s.next()
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// next grades the checked option and asks for a fresh round. With nothing
// checked it does nothing.
func (s *QuizScreen) next() (screen.Screen, tea.Cmd) {
	q := s.game.Question()
	if q == nil {
		return s, nil
	}
	value, ok := s.choices.Selection()
	verdict, answered := s.game.Answer(value, ok)
	if !answered {
		return s, nil
	}

	s.last = &result{verdict: verdict, answer: q.Target.FullName}
	s.log.Debug("answered",
		zap.String("round", q.RoundID),
		zap.Stringer("verdict", verdict),
		zap.Int("correct", s.game.Score().Correct),
		zap.Int("incorrect", s.game.Score().Incorrect),
	)
	return s, s.loadRound()
}

// loadRound fetches the full character list. The in-flight flag makes
// repeated Next presses no-ops until the list arrives.
func (s *QuizScreen) loadRound() tea.Cmd {
	s.loading = true
	s.err = nil
	s.choices.Locked = true

	api, owner := s.api, s.id
	return func() tea.Msg {
		chars, err := api.ListCharacters(context.Background())
		return charactersLoadedMsg{Owner: owner, Characters: chars, Err: err}
	}
}

func (s *QuizScreen) handleCharacters(msg charactersLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Owner != s.id {
		return s, nil
	}
	s.loading = false

	if msg.Err != nil {
		s.err = msg.Err
		return s, nil
	}

	q, err := s.game.NextRound(msg.Characters)
	if err != nil {
		s.err = err
		return s, nil
	}

	s.choices = components.NewRadioGroup(q.Labels(), q.Values())
	s.portrait = ""
	return s, s.loadPortrait(q)
}

func (s *QuizScreen) loadPortrait(q *qz.Question) tea.Cmd {
	loader := s.opts.Portraits
	if loader == nil || q.Target.ImageURL == "" {
		return nil
	}
	round, url := q.RoundID, q.Target.ImageURL
	return func() tea.Msg {
		img, err := loader.Fetch(context.Background(), url)
		return portraitLoadedMsg{RoundID: round, Image: img, Err: err}
	}
}

func (s *QuizScreen) handlePortrait(msg portraitLoadedMsg) (screen.Screen, tea.Cmd) {
	q := s.game.Question()
	if q == nil || msg.RoundID != q.RoundID {
		return s, nil
	}
	if msg.Err != nil {
		s.log.Debug("portrait unavailable", zap.String("round", msg.RoundID), zap.Error(msg.Err))
		return s, nil
	}
	s.portrait = portrait.Render(msg.Image, s.opts.PortraitWidth)
	return s, nil
}

// retryable reports whether r may recover from err.
func retryable(err error) bool {
	return thrones.IsRecoverable(err) || errors.Is(err, qz.ErrNoCharacters)
}
