package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/vetprofile"
	"github.com/smileynet/vetprofile/internal/config"
	"github.com/smileynet/vetprofile/internal/contact"
	"github.com/smileynet/vetprofile/internal/kv"
	"github.com/smileynet/vetprofile/internal/logging"
	"github.com/smileynet/vetprofile/internal/profile"
	"github.com/smileynet/vetprofile/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for vetprofile.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Extra config file applied after the user and project layers." type:"path"`
	UI      UICmd            `cmd:"" default:"withargs" help:"Open the interactive client (default)."`
	Show    ShowCmd          `cmd:"" help:"Print the client's contact record."`
	Set     SetCmd           `cmd:"" help:"Edit and save contact fields without the UI."`
}

// Exit codes.
const (
	exitSuccess = 0
	exitSave    = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, profile.ErrWriteFailed) {
		return exitSave
	}
	return exitSetup
}

// app bundles the dependencies every command needs.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *profile.Store
	close func() error
}

// Close releases storage and flushes the logger.
func (a *app) Close() error {
	_ = a.log.Sync()
	if a.close == nil {
		return nil
	}
	return a.close()
}

// loadConfig loads layered config from user, project, and extra paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/vetprofile/config.yaml"),
		".vetprofile/config.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}
	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStorage opens the configured backend. The returned close func is
// never nil.
func openStorage(cfg config.Storage) (kv.Storage, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendFile:
		return kv.NewFileStorage(cfg.DataDir), noop, nil
	case config.BackendSQLite:
		s, err := kv.OpenSQLite(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMemory:
		return kv.NewMemoryStorage(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// newApp wires config, logger, seed, storage, and the profile store.
func newApp(cfg *config.Config) (*app, error) {
	lg, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	seed, err := contact.LoadSeed(vetprofile.OverlayFS(cfg.Seed.Dir, vetprofile.Data))
	if err != nil {
		lg.Error("loading seed", zap.String("dir", cfg.Seed.Dir), zap.Error(err))
		_ = lg.Sync()
		return nil, err
	}

	storage, closeStorage, err := openStorage(cfg.Storage)
	if err != nil {
		lg.Error("opening storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		_ = lg.Sync()
		return nil, err
	}

	store := profile.NewStore(storage, seed,
		profile.WithKey(cfg.Storage.Key),
		profile.WithLogger(lg),
	)
	lg.Debug("store ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("data_dir", cfg.Storage.DataDir),
	)
	return &app{cfg: cfg, log: lg, store: store, close: closeStorage}, nil
}

// openApp loads config and wires an app for a command.
func openApp(extraConfig string) (*app, error) {
	cfg, err := loadConfig(extraConfig)
	if err != nil {
		return nil, err
	}
	return newApp(cfg)
}

// --- UI command ---

// UICmd opens the interactive client.
type UICmd struct {
	Page      string `arg:"" optional:"" help:"Page to open (home, profile)." default:"/home"`
	AltScreen bool   `help:"Use the terminal's alternate screen." default:"true" negatable:""`
}

// Run executes the ui command.
func (c *UICmd) Run(cli *CLI) error {
	a, err := openApp(cli.Config)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.Run(ctx, a.store, tui.Options{
		Path:      c.Page,
		AltScreen: c.AltScreen,
	})
	if errors.Is(err, tui.ErrNotTTY) {
		return fmt.Errorf("ui: %w (use \"vetprofile show\" or \"vetprofile set\" instead)", err)
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// --- Show command ---

// ShowCmd prints the authoritative contact record.
type ShowCmd struct {
	JSON bool `help:"Print JSON even when stdout is a terminal."`
}

// Run executes the show command.
func (c *ShowCmd) Run(cli *CLI) error {
	a, err := openApp(cli.Config)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	defer a.Close()

	return c.run(os.Stdout, a.store, c.JSON || !tui.IsTTY(os.Stdout))
}

// run prints the record from store, enabling testable wiring.
func (c *ShowCmd) run(w io.Writer, store *profile.Store, asJSON bool) error {
	return printRecord(w, store.Load(), asJSON)
}

// printRecord writes r as indented JSON or as aligned text.
func printRecord(w io.Writer, r contact.Record, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	_, _ = fmt.Fprintf(w, "Name:   %s\n", r.DisplayName())
	_, _ = fmt.Fprintf(w, "Email:  %s\n", r.DisplayEmail())
	_, _ = fmt.Fprintf(w, "Phone:  %s\n", r.Phone)
	_, _ = fmt.Fprintf(w, "Photo:  %s\n", r.PhotoURL)
	return nil
}

// --- Set command ---

// SetCmd edits one or more fields and saves them, the way the profile
// page does: load, mutate, save.
type SetCmd struct {
	Name  *string `help:"New name (empty string clears it)."`
	Email *string `help:"New email (empty string clears it)."`
	Phone *string `help:"New cellphone number (empty string clears it)."`
}

// Run executes the set command.
func (c *SetCmd) Run(cli *CLI) error {
	a, err := openApp(cli.Config)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	defer a.Close()

	return c.run(os.Stdout, a.store)
}

// run applies the flags to a fresh form and saves it, enabling testable wiring.
func (c *SetCmd) run(w io.Writer, store *profile.Store) error {
	if c.Name == nil && c.Email == nil && c.Phone == nil {
		return errors.New("set: nothing to change (use --name, --email, or --phone)")
	}

	form := profile.NewForm(store)
	if c.Name != nil {
		form.SetName(*c.Name)
	}
	if c.Email != nil {
		form.SetEmail(*c.Email)
	}
	if c.Phone != nil {
		form.SetPhone(*c.Phone)
	}

	if err := form.Save(); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	_, _ = fmt.Fprintln(w, "Profile saved successfully!")
	return printRecord(w, form.Record(), false)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vetprofile"),
		kong.Description("View and edit your VetCare client profile."),
		kong.Vars{"version": version + " " + commit + " " + date},
		kong.Bind(&cli),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
