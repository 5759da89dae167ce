// ABOUTME: CLI entry point for pi-calc
// ABOUTME: Parses flags, loads config, hydrates persisted state, dispatches to interactive or print mode

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/pi-calc/internal/termfix"

	"golang.org/x/term"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-calc/internal/config"
	"github.com/mauromedda/pi-calc/internal/display"
	"github.com/mauromedda/pi-calc/internal/engine"
	"github.com/mauromedda/pi-calc/internal/keymap"
	pilog "github.com/mauromedda/pi-calc/internal/log"
	"github.com/mauromedda/pi-calc/internal/mode/interactive"
	"github.com/mauromedda/pi-calc/internal/mode/print"
	"github.com/mauromedda/pi-calc/internal/store"
	"github.com/mauromedda/pi-calc/internal/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pi-calc %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(args cliArgs) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	loaded, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := args.apply(*loaded)
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	settings = settings.WithDefaults()

	st, err := openStore(settings)
	if err != nil {
		return err
	}

	km, err := keymap.Load(settings.Keymap)
	if err != nil {
		return fmt.Errorf("loading keymap: %w", err)
	}
	formatter, err := display.NewFormatter(settings.Locale)
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	history := loadHistory(st)

	if args.printMode() || !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPrint(args, settings, st, km, formatter, history)
	}

	closeLog, err := pilog.OpenFile(settings.LogFile)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = closeLog() }()

	th := resolveTheme(settings, st)
	lipgloss.SetHasDarkBackground(th.Dark)
	pilog.Info("pi-calc %s starting: theme=%s locale=%s data=%s", version, th.Name, formatter.Locale(), settings.DataDir)

	return interactive.Run(interactive.AppDeps{
		Version:   version,
		History:   history,
		UndoDepth: settings.UndoDepth,
		Keymap:    km,
		Formatter: formatter,
		Store:     st,
		Theme:     th,
	})
}

func runPrint(args cliArgs, settings config.Settings, st store.Store, km *keymap.Keymap, f *display.Formatter, history []engine.HistoryEntry) error {
	script := args.keys
	if script == "" {
		var err error
		if script, err = print.ReadScript(os.Stdin); err != nil {
			return err
		}
	}

	e := engine.New(engine.Options{Entries: history, UndoDepth: settings.UndoDepth})
	cfg := print.Config{OutputFormat: args.format, ShowHistory: args.history}
	if err := print.Run(cfg, print.Deps{Engine: e, Keymap: km, Formatter: f}, script, os.Stdout); err != nil {
		return err
	}

	values := map[string]string{store.KeyHistory: ""}
	if len(e.History()) > 0 {
		data, err := e.MarshalHistory()
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		values[store.KeyHistory] = string(data)
	}
	if err := store.SaveAll(context.Background(), st, values); err != nil {
		pilog.Warn("saving history: %v", err)
	}
	return nil
}

// openStore returns the file store under the data directory, or an in-memory
// store when persistence is disabled.
func openStore(s config.Settings) (store.Store, error) {
	if s.NoPersist {
		pilog.Debug("persistence disabled")
		return store.NewMemory(nil), nil
	}
	fs, err := store.NewFileStore(s.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	return fs, nil
}

// loadHistory hydrates history from the store. A missing or corrupt snapshot
// starts an empty history.
func loadHistory(st store.Store) []engine.HistoryEntry {
	raw, ok, err := st.Load(store.KeyHistory)
	if err != nil {
		pilog.Warn("loading history: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	entries, err := engine.UnmarshalHistoryEntries([]byte(raw))
	if err != nil {
		pilog.Warn("discarding stored history: %v", err)
		return nil
	}
	return entries
}

// resolveTheme picks the theme from settings (flag or config), then the
// persisted preference, then dark.
func resolveTheme(s config.Settings, st store.Store) theme.Theme {
	if s.Theme != "" {
		if th, err := theme.ByName(s.Theme); err == nil {
			return th
		}
	}
	name, ok, err := st.Load(store.KeyTheme)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		pilog.Warn("loading theme: %v", err)
	}
	if ok {
		th, err := theme.ByName(name)
		if err == nil {
			return th
		}
		pilog.Warn("ignoring stored theme: %v", err)
	}
	return theme.Dark()
}
