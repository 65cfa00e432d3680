package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/minitwitter/internal/logging/events"
)

// IdentityForm is the modal used to change the session identity. It only
// collects input; the caller validates through the controller and reports
// problems back with SetError while the dialog stays open.
type IdentityForm struct {
	input   textinput.Model
	current string
	err     string
}

func NewIdentityForm(current string) *IdentityForm {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	ti.SetValue(current)
	ti.CursorEnd()
	events.Identity.Prompt(current)
	return &IdentityForm{input: ti, current: current}
}

func (f *IdentityForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *IdentityForm) InputView() string { return f.input.View() }
func (f *IdentityForm) Error() string     { return f.err }
func (f *IdentityForm) Current() string   { return f.current }
func (f *IdentityForm) Title() string     { return "Change identity" }
func (f *IdentityForm) Help() string      { return "Enter to save · Esc to cancel" }

func (f *IdentityForm) SetError(err string) { f.err = err }

// Update returns the command from the text input plus whether the user asked
// to save (done) or dismissed the dialog (cancel).
func (f *IdentityForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			events.Identity.Cancel(events.IdentityReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			events.Identity.Submit(f.Value())
			return nil, true, false
		}
	}

	before := f.input.Value()
	updated, cmd := f.input.Update(msg)
	f.input = updated
	if f.input.Value() != before {
		f.err = ""
	}
	return cmd, false, false
}
