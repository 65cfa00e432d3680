package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestSearchEditingKeys(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	seed(t, h, store, "Bob", "hello world", "B")
	seed(t, h, store, "Ann", "good night", "A")
	m := h.Model()
	m.setFocus(focusSearch)

	h.Type("hello wor")
	if m.list.Filter != "hello wor" || len(m.Feed().Rows) != 1 {
		t.Fatalf("expected one match for %q, got %d", m.list.Filter, len(m.Feed().Rows))
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.list.Filter != "hello " {
		t.Fatalf("expected last word removed, got %q", m.list.Filter)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	if m.list.FilterCursor != 0 {
		t.Fatalf("expected caret at start, got %d", m.list.FilterCursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true})
	if m.list.FilterCursor != len("hello ") {
		t.Fatalf("expected alt+f to jump a word, got %d", m.list.FilterCursor)
	}
	h.Press(tea.KeyLeft)
	h.Press(tea.KeyBackspace)
	if m.list.Filter != "hell " {
		t.Fatalf("expected rune before caret removed, got %q", m.list.Filter)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlE})
	if m.list.FilterCursor != len("hell ") {
		t.Fatalf("expected caret at end, got %d", m.list.FilterCursor)
	}

	h.Press(tea.KeyCtrlU)
	if m.list.Filter != "" || len(m.Feed().Rows) != 2 {
		t.Fatalf("expected search cleared, got %q with %d rows", m.list.Filter, len(m.Feed().Rows))
	}
}

func TestSearchIsCaseInsensitiveOverAuthorAndText(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	seed(t, h, store, "Carol", "Go is fun", "B")
	seed(t, h, store, "bob", "HELLO", "B")
	m := h.Model()
	m.setFocus(focusSearch)

	h.Type("BOB")
	if rows := m.Feed().Rows; len(rows) != 1 || rows[0].Author != "bob" {
		t.Fatalf("expected author match, got %#v", rows)
	}
	h.Press(tea.KeyCtrlU)
	h.Type("hello")
	if rows := m.Feed().Rows; len(rows) != 1 || rows[0].Text != "HELLO" {
		t.Fatalf("expected text match, got %#v", rows)
	}
}

func TestSearchCursorJumpsToBestMatch(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	seed(t, h, store, "Ann", "go west", "A")
	seed(t, h, store, "Ann", "go", "A")
	seed(t, h, store, "Ann", "going home", "A")
	m := h.Model()
	m.setFocus(focusSearch)

	h.Type("go")
	if row, ok := m.list.Selected(); !ok || row.Text != "go" {
		t.Fatalf("expected exact text match selected, got %#v", row)
	}
}

func TestFilterPromptShowsPlaceholderAndCaret(t *testing.T) {
	h, _ := newTestHarness(t, "A", Options{})
	m := h.Model()
	if got := m.filterPrompt(); !strings.Contains(got, "(type to search)") {
		t.Fatalf("expected placeholder, got %q", got)
	}
	m.setFocus(focusSearch)
	h.Type("abc")
	if got := ansi.Strip(m.filterPrompt()); !strings.HasPrefix(got, "» abc") {
		t.Fatalf("expected query after prompt, got %q", got)
	}
}
