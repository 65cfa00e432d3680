package ui

import (
	"unicode"

	"github.com/atomicstack/minitwitter/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.list
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false, nil
		}
		current.SetFilter("", 0)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared("ctrl+u")
		m.refresh()
		return true, nil
	case "ctrl+w":
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(current.Filter)
		m.refresh()
		return true, nil
	case "ctrl+a":
		if !current.MoveFilterCursorStart() {
			return false, nil
		}
		events.Filter.Cursor(current.FilterCursor)
		return true, nil
	case "ctrl+e":
		if !current.MoveFilterCursorEnd() {
			return false, nil
		}
		events.Filter.Cursor(current.FilterCursor)
		return true, nil
	case "alt+b":
		if !current.MoveFilterCursorWordBackward() {
			return false, nil
		}
		events.Filter.CursorWord(current.FilterCursor)
		return true, nil
	case "alt+f":
		if !current.MoveFilterCursorWordForward() {
			return false, nil
		}
		events.Filter.CursorWord(current.FilterCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyLeft:
		if !current.MoveFilterCursorRuneBackward() {
			return false, nil
		}
		events.Filter.Cursor(current.FilterCursor)
		return true, nil
	case tea.KeyRight:
		if !current.MoveFilterCursorRuneForward() {
			return false, nil
		}
		events.Filter.Cursor(current.FilterCursor)
		return true, nil
	}
	return false, nil
}

func (m *Model) appendToFilter(text string) bool {
	if !m.list.InsertFilterText(text) {
		return false
	}
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(m.list.Filter)
	m.refresh()
	return true
}

func (m *Model) removeFilterRune() bool {
	if !m.list.DeleteFilterRuneBackward() {
		return false
	}
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(m.list.Filter)
	m.refresh()
	return true
}

// clearFilter empties the search box after a mutation so the new state of
// the whole board is visible.
func (m *Model) clearFilter(reason string) {
	if m.list.ClearFilter() {
		events.Filter.Cleared(reason)
	}
}

// refresh re-renders the feed for the current filter and hands the rows to
// the list.
func (m *Model) refresh() {
	feed, err := m.ctrl.Render(m.list.Filter)
	if err != nil {
		m.setError(err)
	}
	m.feed = feed
	m.list.SetRows(feed.Rows)
	m.syncViewport()
}

func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	focused := m.focus == focusSearch
	text := m.list.Filter
	if text == "" {
		placeholder := "(type to search)"
		if !focused {
			return prompt + render(styles.FilterPlaceholder, placeholder)
		}
		runes := []rune(placeholder)
		return prompt + renderCaret(string(runes[0])) + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	if !focused {
		return prompt + render(styles.Filter, text)
	}
	runes := []rune(text)
	pos := m.list.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + renderCaret(caretRune) + after
}
