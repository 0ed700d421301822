package characters

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/thronesquiz/internal/router"
	"github.com/abhisek/thronesquiz/internal/thrones"
)

var characters = []thrones.Character{
	{ID: 0, FullName: "Daenerys Targaryen"},
	{ID: 1, FullName: "Samwell Tarly"},
	{ID: 7, FullName: "Jon Snow"},
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T, api thrones.API) *CharactersScreen {
	t.Helper()
	s := New(api)
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	return s
}

func TestCharacters_ListsEveryCharacter(t *testing.T) {
	s := loaded(t, thrones.NewMockAPI(characters...))

	view := s.View(80, 24)
	for _, c := range characters {
		assert.Contains(t, view, c.FullName)
	}
	assert.Equal(t, 3, s.count)
}

func TestCharacters_EnterOpensEditor(t *testing.T) {
	s := loaded(t, thrones.NewMockAPI(characters...))

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, router.EditCharacterMsg{ID: 7}, cmd())
}

func TestCharacters_KeysIgnoredWhileLoading(t *testing.T) {
	s := New(thrones.NewMockAPI(characters...))
	s.Init()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(80, 24), "Gathering")
}

func TestCharacters_ErrorAndRetry(t *testing.T) {
	api := thrones.NewMockAPI(characters...)
	api.SetErr(&thrones.ErrUnavailable{Op: "list characters", Err: errors.New("down")})

	s := loaded(t, api)
	require.Error(t, s.err)
	assert.Contains(t, s.View(80, 24), "press r to retry")
	assert.Equal(t, "r", s.KeyHints()[0].Key)

	api.SetErr(nil)
	_, cmd := s.Update(keyPress('r'))
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.NoError(t, s.err)
	assert.Equal(t, 2, api.ListCount())
}

func TestCharacters_Empty(t *testing.T) {
	s := loaded(t, thrones.NewMockAPI())
	assert.Contains(t, s.View(80, 24), "No characters")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestCharacters_IgnoresReplacedScreensResults(t *testing.T) {
	api := thrones.NewMockAPI(characters...)

	old := New(api)
	stale := old.Init()()

	fresh := New(api)
	fresh.Init()
	fresh.Update(stale)

	assert.True(t, fresh.loading)
	assert.Zero(t, fresh.count)

	_, ok := stale.(listLoadedMsg)
	require.True(t, ok)
	old.Update(stale)
	assert.Equal(t, 3, old.count)
}
