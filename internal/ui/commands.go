package ui

import (
	"errors"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/logging"
	"github.com/atomicstack/minitwitter/internal/logging/events"
	"github.com/atomicstack/minitwitter/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionPost      = "message:post"
	actionDelete    = "message:delete"
	actionClearMine = "message:clear-mine"
	actionIdentity  = "identity:change"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	var verr *board.ValidationError
	if errors.As(result.Err, &verr) {
		m.errMsg = ""
		switch result.ID {
		case actionIdentity:
			if m.identityForm != nil {
				m.identityForm.SetError(verr.Field(board.FieldName))
			}
		default:
			m.compose.SetErrors(verr.Fields)
		}
		return nil
	}
	if result.Err != nil {
		if result.ID == actionIdentity {
			m.closeDialogs()
		}
		m.setError(result.Err)
		return nil
	}

	switch result.ID {
	case actionPost:
		m.compose.Reset()
		m.clearFilter("post")
		m.list.Cursor = 0
	case actionDelete, actionClearMine:
		m.clearFilter("delete")
	case actionIdentity:
		m.closeDialogs()
	}
	m.errMsg = ""
	m.refresh()
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
	m.forceClearInfo()
}
