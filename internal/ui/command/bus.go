package command

import (
	"github.com/atomicstack/minitwitter/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one board action.
type Request struct {
	ID    string
	Label string
	Run   func() (string, error)
}

// Result is delivered back to the model once a request has run.
type Result struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// Bus runs board actions for the UI.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request immediately, inside the caller's Update, and wraps
// the outcome in a command that yields a Result. Running in place keeps each
// read-modify-write of the store ahead of the next input event.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	info, err := req.Run()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	events.Command.Result(req.ID, req.Label, outcome)
	result := Result{ID: req.ID, Label: req.Label, Info: info, Err: err}
	return func() tea.Msg { return result }
}
