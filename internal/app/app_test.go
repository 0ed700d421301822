package app

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/router"
	"github.com/abhisek/thronesquiz/internal/thrones"
)

var testChars = []thrones.Character{
	{ID: 0, FullName: "Daenerys Targaryen"},
	{ID: 1, FullName: "Samwell Tarly"},
	{ID: 2, FullName: "Jon Snow"},
}

func newTestModel(api thrones.API) AppModel {
	return newAppModel(Options{
		API:  api,
		Game: quiz.NewGame(quiz.NewGenerator(rand.NewPCG(3, 4))),
	})
}

// step feeds msg to the model and returns the updated model and command.
func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// drain runs cmd and feeds every resulting message back until none remain.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = step(t, m, msg)
	}
	return m
}

func TestApp_StartsOnHome(t *testing.T) {
	m := newTestModel(thrones.NewMockAPI(testChars...))
	assert.Equal(t, router.PanelHome, m.router.Panel())
	assert.Nil(t, m.Init())
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newTestModel(thrones.NewMockAPI(testChars...))
	_, cmd := step(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_NewGameResetsScore(t *testing.T) {
	api := thrones.NewMockAPI(testChars...)
	m := newTestModel(api)

	m.opts.Game.Answer(0, true)
	m.opts.Game.Answer(-1, true)
	require.Equal(t, 2, m.opts.Game.Score().Total())

	m, cmd := step(t, m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	m = drain(t, m, cmd)

	assert.Equal(t, router.PanelQuiz, m.router.Panel())
	assert.Equal(t, quiz.Score{}, m.opts.Game.Score())
	assert.NotNil(t, m.opts.Game.Question())
	assert.Equal(t, 1, api.ListCount())
}

func TestApp_ListThenEdit(t *testing.T) {
	api := thrones.NewMockAPI(testChars...)
	m := newTestModel(api)

	m, cmd := step(t, m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	m = drain(t, m, cmd)
	assert.Equal(t, router.PanelList, m.router.Panel())

	m, cmd = step(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drain(t, m, cmd)
	m, cmd = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.EditCharacterMsg{ID: 1}, cmd())

	m, cmd = step(t, m, router.EditCharacterMsg{ID: 1})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PanelEdit, m.router.Panel())
	assert.Equal(t, "Update Character", m.router.Active().Title())
}

func TestApp_ScoreSurvivesPanelChanges(t *testing.T) {
	m := newTestModel(thrones.NewMockAPI(testChars...))
	m.opts.Game.Answer(0, true)

	m, _ = step(t, m, router.ListCharactersMsg{})
	assert.Equal(t, quiz.Score{Correct: 1}, m.opts.Game.Score())
}

func TestApp_View(t *testing.T) {
	m := newTestModel(thrones.NewMockAPI(testChars...))

	assert.True(t, m.View().AltScreen)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	content := m.render()
	assert.Contains(t, content, "Thrones Quiz")
	assert.Contains(t, content, "✔ 0")
	assert.Contains(t, content, "New Game")
}
