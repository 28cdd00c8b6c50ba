package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/longdiv/internal/config"
	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/problemgen"
	"github.com/abhisek/longdiv/internal/router"
	"github.com/abhisek/longdiv/internal/screen"
	"github.com/abhisek/longdiv/internal/screens/home"
	"github.com/abhisek/longdiv/internal/screens/practice"
	"github.com/abhisek/longdiv/internal/session"
	"github.com/abhisek/longdiv/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Generator overrides the random problem source.
	Generator problemgen.Generator

	// Problem, when set, opens the worksheet on this problem directly.
	Problem *division.Problem
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	configured := cfg.Problem.Constraints()

	// One controller serves every worksheet; each new problem resets it.
	ctrl := session.NewController(session.Options{
		Generator:   opts.Generator,
		Constraints: &configured,
		Logger:      logger,
	})
	factory := func(c problemgen.Constraints, label string) screen.Screen {
		return practice.New(ctrl, practice.Options{
			Constraints: c,
			Label:       label,
			Debounce:    cfg.UI.CompletionDebounce,
			Logger:      logger,
		})
	}

	r := router.New(home.New(factory, configured))
	if opts.Problem != nil {
		r.Push(practice.New(ctrl, practice.Options{
			Constraints: configured,
			Label:       fmt.Sprintf("%d ÷ %d", opts.Problem.Dividend, opts.Problem.Divisor),
			Debounce:    cfg.UI.CompletionDebounce,
			Problem:     opts.Problem,
			Logger:      logger,
		}))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	if m.router.Depth() > 1 {
		return m.router.Active().Init()
	}
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
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
