package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/minitwitter/internal/logging/events"
	"github.com/atomicstack/minitwitter/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const clearMinePrompt = "Delete all your messages?"

func (m *Model) handleIdentityForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.identityForm == nil {
		return false, nil
	}
	if m.isOutsideClick(msg) {
		events.Identity.Cancel(events.IdentityReasonOutside)
		m.closeDialogs()
		return true, nil
	}
	if !isFormInput(msg) {
		return false, nil
	}
	cmd, done, cancel := m.identityForm.Update(msg)
	if cancel {
		m.closeDialogs()
		return true, cmd
	}
	if done {
		name := m.identityForm.Value()
		// The dialog stays open until the result arrives so a rejected name
		// can be shown inside it.
		return true, m.bus.Execute(command.Request{
			ID:    actionIdentity,
			Label: fmt.Sprintf("identity %s", name),
			Run: func() (string, error) {
				if err := m.ctrl.ChangeIdentity(name); err != nil {
					return "", err
				}
				return fmt.Sprintf("Now posting as %s", name), nil
			},
		})
	}
	return true, cmd
}

func (m *Model) handleConfirmForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.confirmForm == nil {
		return false, nil
	}
	if m.isOutsideClick(msg) {
		events.UI.Confirm(m.confirmForm.Title(), false)
		m.closeDialogs()
		return true, nil
	}
	if !isFormInput(msg) {
		return false, nil
	}
	cmd, done, cancel := m.confirmForm.Update(msg)
	if cancel {
		m.closeDialogs()
		return true, cmd
	}
	if done {
		m.closeDialogs()
		return true, m.bus.Execute(command.Request{
			ID:    actionClearMine,
			Label: "clear mine",
			Run: func() (string, error) {
				removed, err := m.ctrl.ClearOwn()
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted %d of your messages", removed), nil
			},
		})
	}
	return true, cmd
}

// isFormInput reports whether msg belongs to the active dialog. Window
// resizes and action results still reach the regular handlers.
func isFormInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return true
	}
	return false
}

func (m *Model) isOutsideClick(msg tea.Msg) bool {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return false
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return false
	}
	if m.layout.dialog.empty() {
		return false
	}
	return !m.layout.dialog.contains(ev.X, ev.Y)
}

func (m *Model) closeDialogs() {
	m.identityForm = nil
	m.confirmForm = nil
	m.layout.dialog = rect{}
	m.mode = ModeBoard
}

func (m *Model) viewIdentityForm() string {
	lines := []string{
		render(styles.DialogTitle, m.identityForm.Title()),
		"",
		"Current: " + m.identityForm.Current(),
		m.identityForm.InputView(),
	}
	if err := m.identityForm.Error(); err != "" {
		lines = append(lines, "", render(styles.FieldError, err))
	}
	lines = append(lines, "", render(styles.DialogHelp, m.identityForm.Help()))
	return m.viewDialog(strings.Join(lines, "\n"))
}

func (m *Model) viewConfirmForm() string {
	lines := []string{
		render(styles.DialogTitle, m.confirmForm.Title()),
		"",
		render(styles.DialogHelp, m.confirmForm.Help()),
	}
	return m.viewDialog(strings.Join(lines, "\n"))
}
