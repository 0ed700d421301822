package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/thronesquiz/internal/portrait"
	"github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/router"
	"github.com/abhisek/thronesquiz/internal/screen"
	"github.com/abhisek/thronesquiz/internal/screens/characters"
	"github.com/abhisek/thronesquiz/internal/screens/editor"
	"github.com/abhisek/thronesquiz/internal/screens/home"
	quizscreen "github.com/abhisek/thronesquiz/internal/screens/quiz"
	"github.com/abhisek/thronesquiz/internal/thrones"
	"github.com/abhisek/thronesquiz/internal/ui/layout"
)

// Options holds the collaborators shared by every panel.
type Options struct {
	API  thrones.API
	Game *quiz.Game
	// Portraits loads character images; nil disables portraits.
	Portraits     portrait.Loader
	PortraitWidth int
	Logger        *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	if opts.Game == nil {
		opts.Game = quiz.NewGame(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return AppModel{
		router: router.New(home.New()),
		opts:   opts,
		log:    opts.Logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			return m, func() tea.Msg { return router.NewGameMsg{} }
		case "ctrl+l":
			return m, func() tea.Msg { return router.ListCharactersMsg{} }
		}

	case router.NewGameMsg:
		m.opts.Game.Reset()
		m.log.Info("new game")
		return m, m.show(router.PanelQuiz, quizscreen.New(m.opts.Game, m.opts.API, quizscreen.Options{
			Portraits:     m.opts.Portraits,
			PortraitWidth: m.opts.PortraitWidth,
			Logger:        m.opts.Logger,
		}))

	case router.ListCharactersMsg:
		return m, m.show(router.PanelList, characters.New(m.opts.API))

	case router.EditCharacterMsg:
		return m, m.show(router.PanelEdit, editor.New(msg.ID, m.opts.API, editor.Options{
			Portraits:     m.opts.Portraits,
			PortraitWidth: m.opts.PortraitWidth,
			Logger:        m.opts.Logger,
		}))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) show(p router.Panel, s screen.Screen) tea.Cmd {
	m.log.Debug("show panel", zap.Stringer("panel", p))
	return m.router.Show(p, s)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Game.Score(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+N", Description: "New game"},
		{Key: "Ctrl+L", Description: "Characters"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
