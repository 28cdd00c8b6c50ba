package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/longdiv/internal/problemgen"
	"github.com/abhisek/longdiv/internal/router"
	"github.com/abhisek/longdiv/internal/screen"
	"github.com/abhisek/longdiv/internal/ui/components"
	"github.com/abhisek/longdiv/internal/ui/theme"
)

// PracticeFactory builds a worksheet screen for the chosen constraints.
type PracticeFactory func(c problemgen.Constraints, label string) screen.Screen

// HomeScreen lets the learner pick a difficulty.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. configured is the constraint set from the
// config file; it gets its own entry when it differs from every preset.
func New(factory PracticeFactory, configured problemgen.Constraints) *HomeScreen {
	start := func(c problemgen.Constraints, label string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory(c, label)}
			}
		}
	}

	var items []components.MenuItem
	for _, d := range []problemgen.Difficulty{problemgen.DifficultyEasy, problemgen.DifficultyMedium, problemgen.DifficultyHard} {
		c := problemgen.Presets[d]
		label := strings.ToUpper(string(d))
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: describe(c),
			Action: start(c, label),
		})
	}
	if !isPreset(configured) {
		items = append(items, components.MenuItem{
			Label:  "CUSTOM",
			Detail: describe(configured),
			Action: start(configured, "CUSTOM"),
		})
	}
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	m := components.NewMenu(items)
	for i, it := range items {
		if strings.EqualFold(it.Label, string(configured.Difficulty)) && isPreset(configured) {
			m.Selected = i
		}
	}
	return &HomeScreen{menu: m}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Width(width).Render("Long Division Practice"),
		theme.Subtitle.Width(width).Render("Divide, multiply, subtract, bring down."),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(h.menu.View())),
	}
	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func describe(c problemgen.Constraints) string {
	s := fmt.Sprintf("%d-%d into %d-%d", c.MinDivisor, c.MaxDivisor, c.MinDividend, c.MaxDividend)
	if !c.AllowRemainders {
		s += ", exact"
	}
	return s
}

func isPreset(c problemgen.Constraints) bool {
	for _, p := range problemgen.Presets {
		if p == c {
			return true
		}
	}
	return false
}
