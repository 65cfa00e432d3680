package ui

import (
	"github.com/atomicstack/minitwitter/internal/ui/form"
	tea "github.com/charmbracelet/bubbletea"
)

type identityPromptMsg struct{}

type clearMinePromptMsg struct{}

func promptIdentity() tea.Msg { return identityPromptMsg{} }

func promptClearMine() tea.Msg { return clearMinePromptMsg{} }

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: reset transient status and
// run the provided action, which typically opens a dialog.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleIdentityPromptMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(identityPromptMsg); !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.identityForm = form.NewIdentityForm(m.ctrl.Session().User())
		m.mode = ModeIdentityForm
		return promptResult{}
	})
}

func (m *Model) handleClearMinePromptMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(clearMinePromptMsg); !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.confirmForm = form.NewConfirmForm(clearMinePrompt)
		m.mode = ModeConfirmForm
		return promptResult{}
	})
}
