// ABOUTME: Headless print mode: replays a key script through the keymap and prints the display
// ABOUTME: Text or JSON output; reads the script from stdin when stdin is not a terminal

package print

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mauromedda/pi-calc/internal/display"
	"github.com/mauromedda/pi-calc/internal/engine"
	"github.com/mauromedda/pi-calc/internal/keymap"
	"github.com/mauromedda/pi-calc/internal/log"
)

// ErrNoScript is returned when no script was given and stdin is a terminal.
var ErrNoScript = errors.New("no key script: pass --keys or pipe one on stdin")

// Config configures print mode output.
type Config struct {
	OutputFormat string // "text" (default) or "json"
	ShowHistory  bool   // also print history lines in text mode
}

// Deps provides the collaborators print mode drives.
type Deps struct {
	Engine    *engine.Engine
	Keymap    *keymap.Keymap
	Formatter *display.Formatter // nil prints raw engine text
}

// Result is the JSON output shape.
type Result struct {
	Display    string   `json:"display"`
	Error      bool     `json:"error"`
	Expression string   `json:"expression,omitempty"`
	History    []string `json:"history"`
}

// ReadScript returns the script from r unless r is an interactive terminal.
func ReadScript(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", ErrNoScript
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	script := strings.TrimSpace(string(data))
	if script == "" {
		return "", ErrNoScript
	}
	return script, nil
}

// Run replays script and writes the final state to w.
func Run(cfg Config, deps Deps, script string, w io.Writer) error {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.OutputFormat != "text" && cfg.OutputFormat != "json" {
		return fmt.Errorf("unknown output format %q", cfg.OutputFormat)
	}

	keys, err := keymap.ParseScript(script)
	if err != nil {
		return fmt.Errorf("parsing key script: %w", err)
	}
	Replay(deps.Engine, deps.Keymap, keys)

	text, isErr := deps.Engine.Display()
	if deps.Formatter != nil {
		text = deps.Formatter.Format(text, isErr)
	}
	res := Result{
		Display:    text,
		Error:      isErr,
		Expression: deps.Engine.Expression(),
		History:    deps.Engine.HistoryLines(),
	}

	if cfg.OutputFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	}

	if cfg.ShowHistory {
		for _, line := range res.History {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing history: %w", err)
			}
		}
	}
	if _, err := fmt.Fprintln(w, res.Display); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// Replay feeds keys into e. Keys bound to UI-only actions are skipped,
// except recall (which loads the latest history result) and quit (which
// stops the replay).
func Replay(e *engine.Engine, km *keymap.Keymap, keys []string) {
	for _, key := range keys {
		a := km.ActionFor(key)
		if keymap.Dispatch(e, a, key) {
			continue
		}
		switch a {
		case keymap.ActionQuit:
			return
		case keymap.ActionRecall:
			if err := e.RecallFromHistory(0); err != nil {
				log.Debug("print: recall: %v", err)
			}
		case keymap.ActionNone:
			log.Debug("print: unbound key %q", key)
		}
	}
}
