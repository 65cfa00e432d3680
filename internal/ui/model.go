package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/theme"
	"github.com/atomicstack/minitwitter/internal/ui/command"
	"github.com/atomicstack/minitwitter/internal/ui/form"
	uistate "github.com/atomicstack/minitwitter/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeBoard Mode = iota
	ModeIdentityForm
	ModeConfirmForm
)

const appTitle = "mini-twitter"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the message board.
type Model struct {
	ctrl    *board.Controller
	feed    board.Feed
	list    *uistate.List
	compose *form.Compose
	focus   focusTarget
	mode    Mode

	identityForm *form.IdentityForm
	confirmForm  *form.ConfirmForm

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	// Geometry of the last frame, used to resolve mouse clicks.
	layout frameLayout

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the board UI on top of ctrl and renders the initial feed.
func NewModel(ctrl *board.Controller, opts Options) *Model {
	m := &Model{
		ctrl:       ctrl,
		list:       uistate.NewList(),
		compose:    form.NewCompose(),
		bus:        command.New(),
		mode:       ModeBoard,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.setFocus(focusAuthor)
	m.refresh()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(appTitle)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveForm(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return true, tea.Quit
	}
	switch m.mode {
	case ModeIdentityForm:
		return m.handleIdentityForm(msg)
	case ModeConfirmForm:
		return m.handleConfirmForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):     m.handleActionResultMsg,
		reflect.TypeOf(identityPromptMsg{}):  m.handleIdentityPromptMsg,
		reflect.TypeOf(clearMinePromptMsg{}): m.handleClearMinePromptMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Feed returns the feed drawn by the last render.
func (m *Model) Feed() board.Feed { return m.feed }

// Mode reports which screen is active.
func (m *Model) Mode() Mode { return m.mode }
