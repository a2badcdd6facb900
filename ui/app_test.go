package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelys/disktop/config"
	"github.com/avelys/disktop/model"
)

func TestCtrlDPersistsDefaultMode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m := NewModel(nil, time.Second, model.ModeUsage)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	mm := updated.(Model)

	if mm.saveMsg == "" || strings.Contains(mm.saveMsg, "Error") {
		t.Fatalf("save feedback = %q", mm.saveMsg)
	}
	if got := config.Load().DefaultMode; got != "usage" {
		t.Errorf("persisted default mode = %q, want usage", got)
	}
}

func TestModeToggleKey(t *testing.T) {
	m := NewModel(nil, time.Second, model.ModeActivity)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if updated.(Model).mode != model.ModeUsage {
		t.Error("'a' should toggle to usage mode")
	}
}
