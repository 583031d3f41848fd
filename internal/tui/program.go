package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/vetprofile/internal/profile"
)

// ErrNotTTY indicates the interactive client was started without a terminal.
var ErrNotTTY = errors.New("tui: output is not a terminal")

// Options configures Run.
type Options struct {
	Input     io.Reader // Input source (default: os.Stdin).
	Output    io.Writer // Output destination (default: os.Stdout).
	Path      string    // Initial page path, e.g. "/profile".
	AltScreen bool      // Use the terminal's alternate screen.
	SkipTTY   bool      // Skip the terminal check (tests, recordings).
}

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, store *profile.Store, opts Options) error {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if !opts.SkipTTY && !IsTTY(opts.Output) {
		return ErrNotTTY
	}

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(opts.Input),
		tea.WithOutput(opts.Output),
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(store, opts.Path), progOpts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
