package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/minitwitter/internal/board"
	"github.com/atomicstack/minitwitter/internal/kv"
	"github.com/atomicstack/minitwitter/internal/logging"
	"github.com/atomicstack/minitwitter/internal/logging/events"
	"github.com/atomicstack/minitwitter/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DBPath     string
	Backend    string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Dump       bool
}

// Run opens the board and either prints it or executes the Bubble Tea
// program on top of it.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer) (err error) {
	backing, ctrl, err := openBoard(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backing.Close(); cerr != nil {
			logging.Error(fmt.Errorf("close store: %w", cerr))
			if err == nil {
				err = cerr
			}
		}
	}()

	if cfg.Dump {
		return Dump(out, ctrl, cfg.Width)
	}

	model := ui.NewModel(ctrl, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func openBoard(cfg Config) (kv.Store, *board.Controller, error) {
	backing, err := kv.Open(cfg.Backend, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	events.Store.Open(cfg.Backend, cfg.DBPath)
	store := board.NewStore(backing)
	session, err := store.LoadSession()
	if err != nil {
		_ = backing.Close()
		return nil, nil, fmt.Errorf("load session: %w", err)
	}
	return backing, board.NewController(store, session), nil
}
