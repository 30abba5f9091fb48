package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-digger/internal/core"
	_ "github.com/vovakirdan/tui-digger/internal/games/digger"
)

func TestMenuItems(t *testing.T) {
	items := MenuItems()

	want := []MenuItem{
		{GameID: "digger"},
		{GameID: "digger_classic"},
		{GameID: "digger", Level: "cave-in"},
		{GameID: "digger", Level: "first-dig"},
		{GameID: "digger", Level: "vault"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i, w := range want {
		if items[i].GameID != w.GameID || items[i].Level != w.Level {
			t.Errorf("item %d = %+v, want game %q level %q", i, items[i], w.GameID, w.Level)
		}
		if items[i].Title == "" {
			t.Errorf("item %d has no title", i)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	send := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	send(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first item: %d", m.cursor)
	}

	for range 10 {
		send(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want last item %d", m.cursor, len(m.items)-1)
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil {
		t.Fatal("enter should select an item")
	}
	if sel.Level != "vault" {
		t.Errorf("selected level = %q, want vault", sel.Level)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var m tea.Model = NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	send := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next
		return cmd
	}

	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyEnter})

	s := m.(SessionModel)
	if s.game == nil {
		t.Fatal("selecting an item should start a game")
	}
	if got := s.game.game.State().Remaining; got == 0 {
		t.Error("cave-in level should have resources to collect")
	}

	send(runeKey('d'))
	if got := m.(SessionModel).game.game.State().Tick; got != 1 {
		t.Errorf("tick = %d, want 1", got)
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(SessionModel)
	if s.game != nil {
		t.Fatal("esc should return to the menu")
	}
	if s.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}

	if cmd := send(runeKey('q')); cmd == nil {
		t.Error("q in the menu should quit")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
