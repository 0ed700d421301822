package quiz

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thronesquiz/internal/portrait"
	qz "github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/thrones"
)

var characters = []thrones.Character{
	{ID: 0, FirstName: "Daenerys", LastName: "Targaryen", FullName: "Daenerys Targaryen", ImageURL: "http://img/0.jpg"},
	{ID: 1, FirstName: "Samwell", LastName: "Tarly", FullName: "Samwell Tarly", ImageURL: "http://img/1.jpg"},
	{ID: 2, FirstName: "Jon", LastName: "Snow", FullName: "Jon Snow", ImageURL: "http://img/2.jpg"},
	{ID: 3, FirstName: "Arya", LastName: "Stark", FullName: "Arya Stark", ImageURL: "http://img/3.jpg"},
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// stubLoader returns a solid image for every URL.
type stubLoader struct {
	urls []string
	err  error
}

func (l *stubLoader) Fetch(_ context.Context, url string) (image.Image, error) {
	l.urls = append(l.urls, url)
	if l.err != nil {
		return nil, l.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img, nil
}

func newTestScreen(t *testing.T, api thrones.API, opts Options) (*QuizScreen, *qz.Game) {
	t.Helper()
	game := qz.NewGame(qz.NewGenerator(rand.NewPCG(1, 2)))
	return New(game, api, opts), game
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, s *QuizScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := s.Update(cmd())
	return next
}

func start(t *testing.T, s *QuizScreen) {
	t.Helper()
	run(t, s, s.Init())
	require.NotNil(t, s.game.Question())
}

func TestQuiz_InitLoadsQuestion(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})

	cmd := s.Init()
	assert.True(t, s.loading)
	assert.Contains(t, s.View(80, 20), "Summoning")

	next := run(t, s, cmd)
	assert.Nil(t, next, "no portrait loader configured")
	assert.False(t, s.loading)

	q := game.Question()
	require.NotNil(t, q)
	assert.Len(t, s.choices.Labels, qz.NumChoices)
	assert.Equal(t, q.Labels(), s.choices.Labels)
	assert.Equal(t, 1, api.ListCount())

	_, ok := s.choices.Selection()
	assert.False(t, ok, "nothing is checked in a new round")
}

func TestQuiz_NextWithoutSelectionIsNoop(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	start(t, s)
	before := game.Question()

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, qz.Score{}, game.Score())
	assert.Same(t, before, game.Question())
	assert.Equal(t, 1, api.ListCount())
}

func TestQuiz_CorrectAnswer(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	start(t, s)
	q := game.Question()

	s.Update(keyPress(rune('1' + q.CorrectSlot)))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, qz.Score{Correct: 1}, game.Score())

	run(t, s, cmd)
	assert.Equal(t, 2, api.ListCount())
	assert.NotEqual(t, q.RoundID, game.Question().RoundID)
	assert.Contains(t, s.View(100, 30), "Correct!")
}

func TestQuiz_IncorrectAnswer(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	start(t, s)
	q := game.Question()

	wrong := (q.CorrectSlot + 1) % qz.NumChoices
	s.Update(keyPress(rune('1' + wrong)))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, qz.Score{Incorrect: 1}, game.Score())

	run(t, s, cmd)
	assert.Contains(t, s.View(100, 30), "Wrong. That was "+q.Target.FullName)
}

func TestQuiz_SpaceChecksCursor(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	start(t, s)
	q := game.Question()

	for range q.CorrectSlot {
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeySpace))
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, qz.Score{Correct: 1}, game.Score())
}

func TestQuiz_DoubleNextIgnoredWhileLoading(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	start(t, s)

	s.Update(keyPress('1'))
	_, first := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, first)
	_, second := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, second)
	assert.Equal(t, 1, game.Score().Total())
}

func TestQuiz_ErrorAndRetry(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	api.SetErr(&thrones.ErrUnavailable{Op: "list characters", Err: errors.New("connection refused")})
	s, game := newTestScreen(t, api, Options{})

	run(t, s, s.Init())
	require.Error(t, s.err)
	assert.Nil(t, game.Question())
	assert.Contains(t, s.View(80, 20), "press r to retry")

	// Enter does nothing in the error state.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)

	api.SetErr(nil)
	_, cmd = s.Update(keyPress('r'))
	run(t, s, cmd)
	assert.NoError(t, s.err)
	assert.NotNil(t, game.Question())
	assert.Equal(t, 2, api.ListCount())
}

func TestQuiz_EmptyList(t *testing.T) {
	api := thrones.NewMockAPI()
	s, _ := newTestScreen(t, api, Options{})

	run(t, s, s.Init())
	assert.ErrorIs(t, s.err, qz.ErrNoCharacters)
	assert.Contains(t, s.View(80, 20), "no characters")
}

func TestQuiz_IgnoresOtherScreensResults(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, game := newTestScreen(t, api, Options{})
	s.Init()

	s.Update(charactersLoadedMsg{Owner: "someone-else", Characters: characters})
	assert.True(t, s.loading)
	assert.Nil(t, game.Question())
}

func TestQuiz_Portrait(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	loader := &stubLoader{}
	s, game := newTestScreen(t, api, Options{Portraits: loader, PortraitWidth: 8})

	portraitCmd := run(t, s, s.Init())
	require.NotNil(t, portraitCmd)
	q := game.Question()

	assert.Equal(t, portrait.Placeholder("?", 8), s.renderPortrait())

	msg := portraitCmd()
	loaded, ok := msg.(portraitLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, q.RoundID, loaded.RoundID)
	assert.Equal(t, []string{q.Target.ImageURL}, loader.urls)

	s.Update(portraitLoadedMsg{RoundID: "stale", Image: loaded.Image})
	assert.Empty(t, s.portrait)

	s.Update(msg)
	assert.NotEmpty(t, s.portrait)
}

func TestQuiz_PortraitFailureKeepsPlaceholder(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	loader := &stubLoader{err: errors.New("boom")}
	s, _ := newTestScreen(t, api, Options{Portraits: loader, PortraitWidth: 8})

	portraitCmd := run(t, s, s.Init())
	s.Update(portraitCmd())
	assert.Empty(t, s.portrait)
	assert.NoError(t, s.err)
}

func TestQuiz_KeyHints(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	s, _ := newTestScreen(t, api, Options{})
	start(t, s)
	assert.Equal(t, "Enter", s.KeyHints()[2].Key)

	s.err = &thrones.ErrUnavailable{Op: "x", Err: errors.New("y")}
	assert.Equal(t, "r", s.KeyHints()[0].Key)
}
