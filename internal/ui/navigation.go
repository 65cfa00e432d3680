package ui

import (
	"fmt"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/logging/events"
	"github.com/atomicstack/minitwitter/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type focusTarget int

const (
	focusSearch focusTarget = iota
	focusAuthor
	focusText
	focusList
	focusCount
)

func (f focusTarget) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusAuthor:
		return board.FieldAuthor
	case focusText:
		return board.FieldText
	case focusList:
		return "list"
	}
	return "unknown"
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	events.UI.Focus(target.String())
	switch target {
	case focusAuthor, focusText:
		return m.compose.Focus(target.String())
	}
	return m.compose.Focus("")
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta) % int(focusCount)
	if next < 0 {
		next += int(focusCount)
	}
	return m.setFocus(focusTarget(next))
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.clearInfo()
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	case "ctrl+o":
		return promptIdentity
	case "ctrl+x":
		return promptClearMine
	}

	switch m.focus {
	case focusSearch:
		if handled, cmd := m.handleTextInput(keyMsg); handled {
			return cmd
		}
		if keyMsg.Type == tea.KeyEnter {
			return m.setFocus(focusList)
		}
		m.handleListNavigation(keyMsg.String(), false)
	case focusAuthor, focusText:
		if keyMsg.Type == tea.KeyEnter {
			return m.submit()
		}
		return m.compose.Update(keyMsg)
	case focusList:
		switch keyMsg.String() {
		case "d", "delete":
			return m.deleteSelected()
		case "/":
			return m.setFocus(focusSearch)
		}
		m.handleListNavigation(keyMsg.String(), true)
	}
	return nil
}

// handleListNavigation moves the list cursor. vi keys are only honoured when
// the list itself has focus, since elsewhere they are text.
func (m *Model) handleListNavigation(key string, vi bool) bool {
	moved := false
	switch key {
	case "up":
		moved = m.list.MoveCursorUp()
	case "down":
		moved = m.list.MoveCursorDown()
	case "pgup":
		moved = m.list.MoveCursorPageUp(m.maxVisibleRows())
	case "pgdown":
		moved = m.list.MoveCursorPageDown(m.maxVisibleRows())
	case "home":
		moved = m.list.MoveCursorHome()
	case "end":
		moved = m.list.MoveCursorEnd()
	}
	if vi && !moved {
		switch key {
		case "k":
			moved = m.list.MoveCursorUp()
		case "j":
			moved = m.list.MoveCursorDown()
		case "g":
			moved = m.list.MoveCursorHome()
		case "G":
			moved = m.list.MoveCursorEnd()
		}
	}
	if moved {
		events.UI.Cursor(m.list.Cursor)
		m.syncViewport()
	}
	return moved
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) submit() tea.Cmd {
	author, text := m.compose.Values()
	return m.bus.Execute(command.Request{
		ID:    actionPost,
		Label: "post message",
		Run: func() (string, error) {
			msg, err := m.ctrl.Submit(author, text)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Posted as %s", msg.Author), nil
		},
	})
}

func (m *Model) deleteSelected() tea.Cmd {
	row, ok := m.list.Selected()
	if !ok {
		return nil
	}
	if !row.Own {
		events.UI.DeleteBlocked(row.ID, row.Owner)
		m.setInfo("Only your own messages can be deleted")
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:    actionDelete,
		Label: fmt.Sprintf("delete %d", row.ID),
		Run: func() (string, error) {
			if err := m.ctrl.Delete(row.ID); err != nil {
				return "", err
			}
			return "Message deleted", nil
		},
	})
}
