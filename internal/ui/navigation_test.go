package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDeleteOnlyWorksOnOwnRows(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	seed(t, h, store, "Ann", "mine", "A")
	seed(t, h, store, "Bob", "theirs", "B")
	m := h.Model()
	m.setFocus(focusList)

	if row, _ := m.list.Selected(); row.Text != "theirs" {
		t.Fatalf("expected newest (foreign) row selected, got %q", row.Text)
	}
	h.Type("d")
	if m.Feed().Total != 2 {
		t.Fatalf("expected foreign delete to be inert")
	}
	if !strings.Contains(h.View(), "Only your own messages can be deleted") {
		t.Fatalf("expected hint on status line, got:\n%s", h.View())
	}

	h.Press(tea.KeyDown)
	h.Press(tea.KeyDelete)
	feed := m.Feed()
	if feed.Total != 1 || feed.Rows[0].Text != "theirs" {
		t.Fatalf("expected own message deleted, got %#v", feed.Rows)
	}
}

func TestDeleteClearsFilter(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{})
	seed(t, h, store, "Ann", "mine", "A")
	seed(t, h, store, "Ann", "other", "A")
	m := h.Model()
	m.setFocus(focusSearch)
	h.Type("mine")
	h.Press(tea.KeyEnter)
	if m.focus != focusList {
		t.Fatalf("expected enter in search to focus the list")
	}
	h.Type("d")
	if m.list.Filter != "" {
		t.Fatalf("expected filter cleared after delete, got %q", m.list.Filter)
	}
	if rows := m.Feed().Rows; len(rows) != 1 || rows[0].Text != "other" {
		t.Fatalf("expected unfiltered remainder, got %#v", rows)
	}
}

func TestListViewportFollowsCursor(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{Width: 80, Height: 12})
	for i := 0; i < 10; i++ {
		seed(t, h, store, "Ann", fmt.Sprintf("msg %02d", i), "A")
	}
	m := h.Model()
	if got := m.maxVisibleRows(); got != 3 {
		t.Fatalf("expected 3 visible rows, got %d", got)
	}
	view := h.View()
	if !strings.Contains(view, "msg 09") || strings.Contains(view, "msg 06") {
		t.Fatalf("expected only the newest rows visible, got:\n%s", view)
	}

	m.setFocus(focusList)
	for i := 0; i < 5; i++ {
		h.Press(tea.KeyDown)
	}
	view = h.View()
	if !strings.Contains(view, "msg 04") || strings.Contains(view, "msg 09") {
		t.Fatalf("expected viewport scrolled to cursor, got:\n%s", view)
	}

	h.Press(tea.KeyEnd)
	if !strings.Contains(h.View(), "msg 00") {
		t.Fatalf("expected oldest row after end")
	}
	h.Type("g")
	if m.list.Cursor != 0 {
		t.Fatalf("expected g to jump to the newest row, got %d", m.list.Cursor)
	}
}

func TestMouseSelectsRowAndDeletesThroughControl(t *testing.T) {
	h, store := newTestHarness(t, "A", Options{Width: 100, Height: 30})
	seed(t, h, store, "Ann", "mine", "A")
	seed(t, h, store, "Bob", "theirs", "B")
	m := h.Model()
	h.View()

	top := m.layout.rowsTop
	h.Send(tea.MouseMsg{X: 3, Y: top + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.focus != focusList || m.list.Cursor != 1 {
		t.Fatalf("expected click to select second row, focus=%s cursor=%d", m.focus, m.list.Cursor)
	}

	h.Send(tea.MouseMsg{X: m.layout.deleteX + 1, Y: top, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Feed().Total != 2 {
		t.Fatalf("expected click on disabled control to do nothing")
	}

	h.View()
	h.Send(tea.MouseMsg{X: m.layout.deleteX + 1, Y: top + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if feed := m.Feed(); feed.Total != 1 || feed.Own != 0 {
		t.Fatalf("expected own row deleted by click, got total %d own %d", feed.Total, feed.Own)
	}
}
