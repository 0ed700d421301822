package characters

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/thronesquiz/internal/router"
	"github.com/abhisek/thronesquiz/internal/screen"
	"github.com/abhisek/thronesquiz/internal/thrones"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
	"github.com/abhisek/thronesquiz/internal/ui/theme"
)

// listLoadedMsg carries the fetched character list. Owner is the screen
// instance that asked for it.
type listLoadedMsg struct {
	Owner      string
	Characters []thrones.Character
	Err        error
}

// CharactersScreen lists every character; choosing one opens its editor.
type CharactersScreen struct {
	id      string
	api     thrones.API
	loading bool
	err     error
	menu    components.Menu
	count   int
}

var _ screen.Screen = (*CharactersScreen)(nil)
var _ screen.KeyHintProvider = (*CharactersScreen)(nil)

// New creates a CharactersScreen backed by api.
func New(api thrones.API) *CharactersScreen {
	return &CharactersScreen{id: uuid.NewString(), api: api}
}

func (s *CharactersScreen) Init() tea.Cmd {
	return s.load()
}

func (s *CharactersScreen) Title() string {
	return "Characters"
}

func (s *CharactersScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Ctrl+N", Description: "New game"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Edit"},
		{Key: "Ctrl+N", Description: "New game"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CharactersScreen) load() tea.Cmd {
	s.loading = true
	s.err = nil
	api, owner := s.api, s.id
	return func() tea.Msg {
		chars, err := api.ListCharacters(context.Background())
		return listLoadedMsg{Owner: owner, Characters: chars, Err: err}
	}
}

func (s *CharactersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.Owner != s.id {
			return s, nil
		}
		s.loading = false
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		s.setCharacters(msg.Characters)
		return s, nil

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		if s.err != nil {
			if msg.String() == "r" {
				return s, s.load()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CharactersScreen) setCharacters(chars []thrones.Character) {
	items := make([]components.MenuItem, 0, len(chars))
	for _, c := range chars {
		id := c.ID
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%3d  %s", c.ID, c.FullName),
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.EditCharacterMsg{ID: id} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	s.count = len(chars)
}

func (s *CharactersScreen) View(width, height int) string {
	if s.err != nil {
		return layout.RenderError("Could not load characters: "+s.err.Error(), true, width, height)
	}
	if s.loading {
		return layout.RenderLoading("Gathering the houses...", width, height)
	}
	if s.count == 0 {
		return layout.RenderLoading("No characters to show.", width, height)
	}

	cw := components.ContentWidth(width)
	rows := max(height-6, 1)

	heading := theme.Title.Render("Choose a character to update") +
		"  " + theme.Hint.Render(fmt.Sprintf("%d/%d", s.menu.Selected+1, s.count))
	list := components.Card(strings.TrimRight(s.menu.ViewWindow(rows), "\n"), cw)

	return components.Center(heading+"\n\n"+list, width, height)
}
