package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/totem/internal/logging/events"
	"github.com/atomicstack/totem/internal/ui"
	"github.com/atomicstack/totem/internal/vault"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const version = "1.0.0"

// Config describes user-provided application options.
type Config struct {
	VaultPath  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program, then persists the
// vault when the session mutated it.
func Run(cfg Config) error {
	password, err := promptPassword()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	store, err := vault.Open(cfg.VaultPath, password)
	if err != nil {
		return fmt.Errorf("open vault: %w", err)
	}

	title := fmt.Sprintf("totem v%s", version)
	model := ui.NewModel(store, title, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	events.App.Shutdown(store.Dirty())
	if store.Dirty() {
		if err := store.Save(); err != nil {
			return fmt.Errorf("save vault: %w", err)
		}
	}
	return nil
}

func promptPassword() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}
