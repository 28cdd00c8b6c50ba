package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/longdiv/internal/config"
	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/router"
)

func TestNewAppModel_StartsOnHome(t *testing.T) {
	m := newAppModel(Options{Config: config.Default()})
	if m.router.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active = %q, want Home", got)
	}
	if m.Init() != nil {
		t.Error("home needs no initial command")
	}
}

func TestNewAppModel_FixedProblemOpensWorksheet(t *testing.T) {
	p, err := division.NewProblem(53, 1006)
	if err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Problem: &p})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}
	if m.Init() == nil {
		t.Error("worksheet should load its problem on init")
	}
}

func TestUpdate_EscPopsOnlyAboveHome(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("Esc on home should do nothing")
	}

	p, _ := division.NewProblem(7, 84)
	m = newAppModel(Options{Problem: &p})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("Esc above home should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}
