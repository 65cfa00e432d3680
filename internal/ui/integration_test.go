package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/minitwitter/internal/board"
	tea "github.com/charmbracelet/bubbletea"
)

func TestIdentityChangeFlipsOwnership(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})

	post(h, "Alice", "hello")
	if feed := h.Model().Feed(); feed.Total != 1 || feed.Own != 1 {
		t.Fatalf("expected total 1 / own 1 after first post, got %d / %d", feed.Total, feed.Own)
	}

	h.Press(tea.KeyCtrlO)
	h.Press(tea.KeyCtrlU)
	h.Type("B")
	h.Press(tea.KeyEnter)
	if h.Model().Mode() != ModeBoard {
		t.Fatalf("expected dialog closed after valid save")
	}
	if user, _ := store.CurrentUser(); user != "B" {
		t.Fatalf("expected persisted identity B, got %q", user)
	}

	post(h, "Bea", "hi")

	feed := h.Model().Feed()
	if feed.Total != 2 || feed.Own != 1 {
		t.Fatalf("expected total 2 / own 1, got %d / %d", feed.Total, feed.Own)
	}
	if !feed.Rows[0].Own || feed.Rows[0].Text != "hi" {
		t.Fatalf("expected B's message first and owned, got %#v", feed.Rows[0])
	}
	if feed.Rows[1].Own {
		t.Fatalf("expected A's message to be foreign for B")
	}

	view := h.View()
	if !strings.Contains(view, "posting as B") || !strings.Contains(view, "total 2 · mine 1") {
		t.Fatalf("expected header with identity and counters, got:\n%s", view)
	}
	if line := lineContaining(view, "Bea (You)"); !strings.Contains(line, deleteEnabledLabel) {
		t.Fatalf("expected enabled delete on own row, got %q", line)
	}
	if line := lineContaining(view, "Alice"); !strings.Contains(line, deleteDisabledLabel) || strings.Contains(line, "(You)") {
		t.Fatalf("expected disabled delete on foreign row, got %q", line)
	}
}

func TestNonMatchingFilterShowsNoResults(t *testing.T) {
	h, _ := newTestHarness(t, "A", Options{})
	if !strings.Contains(h.View(), board.PlaceholderNoMessages) {
		t.Fatalf("expected empty-board placeholder")
	}

	post(h, "Alice", "hello")
	h.Press(tea.KeyTab)
	h.Press(tea.KeyTab)
	if h.Model().focus != focusSearch {
		t.Fatalf("expected search focus, got %s", h.Model().focus)
	}
	h.Type("zzz")

	view := h.View()
	if !strings.Contains(view, board.PlaceholderNoResults) {
		t.Fatalf("expected no-results placeholder, got:\n%s", view)
	}
	if strings.Contains(view, board.PlaceholderNoMessages) {
		t.Fatalf("expected the empty-board text to stay hidden")
	}
	if !strings.Contains(view, "total 1 · mine 1") {
		t.Fatalf("expected counters to ignore the filter, got:\n%s", view)
	}

	h.Press(tea.KeyCtrlU)
	if got := len(h.Model().Feed().Rows); got != 1 {
		t.Fatalf("expected row back after clearing search, got %d", got)
	}
}

func TestSubmitBoundary(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	m := h.Model()

	m.compose.SetValues("Alice", strings.Repeat("a", board.MaxTextLength+1))
	m.setFocus(focusText)
	h.Press(tea.KeyEnter)
	if !strings.Contains(h.View(), "Message is too long") {
		t.Fatalf("expected length error, got:\n%s", h.View())
	}
	if listed, _ := store.ListMessages(); len(listed) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(listed))
	}

	m.compose.SetValues("Alice", strings.Repeat("a", board.MaxTextLength))
	h.Press(tea.KeyEnter)
	if listed, _ := store.ListMessages(); len(listed) != 1 {
		t.Fatalf("expected 280 characters accepted, got %d stored", len(listed))
	}
	if m.compose.Count() != 0 {
		t.Fatalf("expected compose reset after post")
	}
	if strings.Contains(h.View(), "Message is too long") {
		t.Fatalf("expected error cleared after post")
	}
}

func TestSubmitShowsErrorsPerField(t *testing.T) {
	h, _ := newTestHarness(t, "A", Options{})
	h.Press(tea.KeyEnter)
	view := h.View()
	if !strings.Contains(lineContaining(view, "Name"), "Enter a name") {
		t.Fatalf("expected author error next to field, got:\n%s", view)
	}
	if !strings.Contains(lineContaining(view, "Message"), "Enter a message") {
		t.Fatalf("expected text error next to field, got:\n%s", view)
	}

	h.Type("A")
	if strings.Contains(h.View(), "Enter a name") {
		t.Fatalf("expected typing to clear the author error")
	}
}

func TestPostClearsFilter(t *testing.T) {
	h, _ := newTestHarness(t, "A", Options{})
	post(h, "Alice", "first")
	h.Model().setFocus(focusSearch)
	h.Type("fir")
	if h.Model().list.Filter != "fir" {
		t.Fatalf("expected filter typed")
	}

	post(h, "Alice", "second")
	m := h.Model()
	if m.list.Filter != "" {
		t.Fatalf("expected filter cleared after post, got %q", m.list.Filter)
	}
	if len(m.Feed().Rows) != 2 || m.list.Cursor != 0 {
		t.Fatalf("expected unfiltered feed with newest selected, got %d rows cursor %d", len(m.Feed().Rows), m.list.Cursor)
	}
}

func TestIdentityDialogStateMachine(t *testing.T) {
	h, _ := newTestHarness(t, "A", Options{Width: 80, Height: 24})
	m := h.Model()

	h.Press(tea.KeyCtrlO)
	view := h.View()
	if m.Mode() != ModeIdentityForm || !strings.Contains(view, "Change identity") || !strings.Contains(view, "Current: A") {
		t.Fatalf("expected identity dialog, got:\n%s", view)
	}

	h.Press(tea.KeyCtrlU)
	h.Press(tea.KeyEnter)
	if m.Mode() != ModeIdentityForm || !strings.Contains(h.View(), "Name cannot be empty") {
		t.Fatalf("expected dialog to stay open with error, got:\n%s", h.View())
	}
	if m.ctrl.Session().User() != "A" {
		t.Fatalf("expected identity unchanged")
	}

	h.Press(tea.KeyEsc)
	if m.Mode() != ModeBoard || h.Quit() {
		t.Fatalf("expected esc to close the dialog without quitting")
	}

	h.Press(tea.KeyCtrlO)
	h.View()
	h.Send(tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Mode() != ModeIdentityForm {
		t.Fatalf("expected click inside the dialog to keep it open")
	}
	h.Send(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Mode() != ModeBoard {
		t.Fatalf("expected click outside to close the dialog")
	}

	h.Press(tea.KeyCtrlO)
	h.Press(tea.KeyCtrlU)
	h.Type("Zed")
	h.Press(tea.KeyEnter)
	if m.Mode() != ModeBoard || m.ctrl.Session().User() != "Zed" {
		t.Fatalf("expected identity Zed after save, got %q", m.ctrl.Session().User())
	}
	if !strings.Contains(h.View(), "posting as Zed") {
		t.Fatalf("expected header to show new identity")
	}
}

func TestClearMineNeedsConfirmation(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{Width: 80, Height: 24})
	seed(t, h, store, "Bob", "theirs", "B")
	seed(t, h, store, "Ann", "mine 1", "A")
	seed(t, h, store, "Ann", "mine 2", "A")
	m := h.Model()

	h.Press(tea.KeyCtrlX)
	if m.Mode() != ModeConfirmForm || !strings.Contains(h.View(), clearMinePrompt) {
		t.Fatalf("expected confirm dialog")
	}
	h.Type("n")
	if m.Mode() != ModeBoard || m.Feed().Own != 2 {
		t.Fatalf("expected decline to keep messages, own=%d", m.Feed().Own)
	}

	h.Press(tea.KeyCtrlX)
	h.View()
	h.Send(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Mode() != ModeBoard || m.Feed().Own != 2 {
		t.Fatalf("expected outside click to cancel")
	}

	h.Press(tea.KeyCtrlX)
	h.Type("y")
	feed := m.Feed()
	if feed.Own != 0 || feed.Total != 1 || feed.Rows[0].Text != "theirs" {
		t.Fatalf("expected only the foreign message left, got %#v", feed)
	}
}
