package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/minitwitter/internal/logging/events"
)

// ConfirmForm asks a yes/no question before a destructive action.
type ConfirmForm struct {
	prompt string
}

func NewConfirmForm(prompt string) *ConfirmForm {
	return &ConfirmForm{prompt: prompt}
}

func (f *ConfirmForm) Title() string { return f.prompt }
func (f *ConfirmForm) Help() string  { return "y/Enter to confirm · n/Esc to cancel" }

// Update reports whether the question was accepted (done) or declined
// (cancel). Any other key is ignored.
func (f *ConfirmForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		events.UI.Confirm(f.prompt, true)
		return nil, true, false
	case "n", "N", "esc":
		events.UI.Confirm(f.prompt, false)
		return nil, false, true
	}
	return nil, false, false
}
