package editor

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/thronesquiz/internal/portrait"
	"github.com/abhisek/thronesquiz/internal/screen"
	"github.com/abhisek/thronesquiz/internal/thrones"
	"github.com/abhisek/thronesquiz/internal/ui/components"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
)

// Field indexes, in form order.
const (
	FieldID = iota
	FieldFirstName
	FieldLastName
	FieldFullName
	FieldImageURL
	numFields
)

// focusSave is the focus index of the Save button.
const focusSave = numFields

var fieldLabels = [numFields]string{"Id", "First name", "Last name", "Full name", "Image URL"}

// Options configures optional collaborators of the editor.
type Options struct {
	// Portraits loads character images; nil disables portraits.
	Portraits     portrait.Loader
	PortraitWidth int
	Logger        *zap.Logger
}

// EditorScreen edits one character and posts the form back to the API.
type EditorScreen struct {
	owner string
	id    int
	api   thrones.API
	opts  Options
	log   *zap.Logger

	loading bool
	loadErr error
	char    *thrones.Character

	inputs [numFields]components.TextInput
	save   components.Button
	focus  int

	saving   bool
	saveErr  error
	saved    bool
	portrait string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an editor for the character with the given id.
func New(id int, api thrones.API, opts Options) *EditorScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PortraitWidth <= 0 {
		opts.PortraitWidth = 32
	}

	s := &EditorScreen{
		owner: uuid.NewString(),
		id:    id,
		api:   api,
		opts:  opts,
		log:   log.Named("editor"),
	}
	for i, label := range fieldLabels {
		s.inputs[i] = components.NewTextInput(label, "", 0)
	}
	s.save = components.NewButton("Save", false, s.submit)
	return s
}

func (s *EditorScreen) Init() tea.Cmd {
	return s.load()
}

func (s *EditorScreen) Title() string {
	return "Update Character"
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	if s.loadErr != nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Ctrl+L", Description: "Characters"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Ctrl+L", Description: "Characters"},
		{Key: "Ctrl+N", Description: "New game"},
	}
}

func (s *EditorScreen) load() tea.Cmd {
	s.loading = true
	s.loadErr = nil
	api, owner, id := s.api, s.owner, s.id
	return func() tea.Msg {
		char, err := api.GetCharacter(context.Background(), id)
		return characterLoadedMsg{Owner: owner, Character: char, Err: err}
	}
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case characterLoadedMsg:
		if msg.Owner != s.owner {
			return s, nil
		}
		return s.handleLoaded(msg)

	case portraitLoadedMsg:
		if msg.Owner != s.owner {
			return s, nil
		}
		if msg.Err != nil {
			s.log.Debug("portrait unavailable", zap.Int("id", s.id), zap.Error(msg.Err))
			return s, nil
		}
		s.portrait = portrait.Render(msg.Image, s.opts.PortraitWidth)
		return s, nil

	case saveDoneMsg:
		if msg.Owner != s.owner {
			return s, nil
		}
		s.saving = false
		s.saveErr = msg.Err
		s.saved = msg.Err == nil
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input messages.
	if s.char != nil && s.focus < numFields {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EditorScreen) handleLoaded(msg characterLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.loadErr = msg.Err
		return s, nil
	}

	c := msg.Character
	s.char = c
	form := thrones.UpdateFrom(*c)
	s.inputs[FieldID].SetValue(form.ID)
	s.inputs[FieldFirstName].SetValue(form.FirstName)
	s.inputs[FieldLastName].SetValue(form.LastName)
	s.inputs[FieldFullName].SetValue(form.FullName)
	s.inputs[FieldImageURL].SetValue(form.ImageURL)

	return s, tea.Batch(s.setFocus(FieldFirstName), s.loadPortrait(c.ImageURL))
}

func (s *EditorScreen) loadPortrait(url string) tea.Cmd {
	loader := s.opts.Portraits
	if loader == nil || url == "" {
		return nil
	}
	owner := s.owner
	return func() tea.Msg {
		img, err := loader.Fetch(context.Background(), url)
		return portraitLoadedMsg{Owner: owner, Image: img, Err: err}
	}
}

func (s *EditorScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}
	if s.loadErr != nil {
		if msg.String() == "r" {
			return s, s.load()
		}
		return s, nil
	}
	if s.char == nil {
		return s, nil
	}

	switch msg.String() {
	case "ctrl+s":
		return s, s.submit()
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % (numFields + 1))
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + numFields) % (numFields + 1))
	case "enter":
		if s.focus == focusSave {
			var cmd tea.Cmd
			s.save, cmd = s.save.Update(msg)
			return s, cmd
		}
		return s, s.setFocus(s.focus + 1)
	}

	if s.focus < numFields {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// setFocus moves focus to index i, which is an input or the Save button.
func (s *EditorScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.save.Active = i == focusSave

	var cmd tea.Cmd
	for j := range s.inputs {
		if j == i {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

// Form returns the update built from the current field values, exactly as
// typed.
func (s *EditorScreen) Form() thrones.CharacterUpdate {
	return thrones.CharacterUpdate{
		ID:        s.inputs[FieldID].Value(),
		FirstName: s.inputs[FieldFirstName].Value(),
		LastName:  s.inputs[FieldLastName].Value(),
		FullName:  s.inputs[FieldFullName].Value(),
		ImageURL:  s.inputs[FieldImageURL].Value(),
	}
}

// submit posts the form. A second save while one is in flight is ignored.
func (s *EditorScreen) submit() tea.Cmd {
	if s.saving || s.char == nil {
		return nil
	}
	s.saving = true
	s.saved = false
	s.saveErr = nil

	api, owner, update := s.api, s.owner, s.Form()
	return func() tea.Msg {
		return saveDoneMsg{Owner: owner, Err: api.SaveCharacter(context.Background(), update)}
	}
}
