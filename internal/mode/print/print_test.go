// ABOUTME: Tests for headless print mode
// ABOUTME: Replays key scripts against a real engine and checks text and JSON output

package print

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/pi-calc/internal/display"
	"github.com/mauromedda/pi-calc/internal/engine"
	"github.com/mauromedda/pi-calc/internal/keymap"
)

func testDeps() Deps {
	return Deps{
		Engine: engine.New(engine.Options{}),
		Keymap: keymap.Default(),
	}
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Run(Config{}, testDeps(), "3+4*2=", &buf); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := buf.String(); got != "14\n" {
		t.Errorf("output = %q, want %q", got, "14\n")
	}
}

func TestRun_TextWithHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Run(Config{ShowHistory: true}, testDeps(), "3+4*2=", &buf); err != nil {
		t.Fatal(err)
	}
	want := "7 × 2 = 14\n3 + 4 = 7\n14\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Run(Config{OutputFormat: "json"}, testDeps(), "9/0=", &buf); err != nil {
		t.Fatal(err)
	}
	var res Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if !res.Error || res.Display != "Cannot divide by zero" {
		t.Errorf("result = %+v", res)
	}
	if len(res.History) != 0 {
		t.Errorf("history = %q, want empty", res.History)
	}
}

func TestRun_Formatter(t *testing.T) {
	t.Parallel()

	f, err := display.NewFormatter("de")
	if err != nil {
		t.Fatal(err)
	}
	deps := testDeps()
	deps.Formatter = f

	var buf bytes.Buffer
	if err := Run(Config{}, deps, "1234567.5", &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1.234.567,5" {
		t.Errorf("output = %q, want 1.234.567,5", got)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Run(Config{OutputFormat: "xml"}, testDeps(), "1", &buf); err == nil {
		t.Error("expected error for unknown format")
	}
	if err := Run(Config{}, testDeps(), "1<enter", &buf); err == nil {
		t.Error("expected error for malformed script")
	}
}

func TestReplay_RecallAndQuit(t *testing.T) {
	t.Parallel()

	deps := testDeps()
	Replay(deps.Engine, deps.Keymap, []string{"6", "*", "7", "=", "esc", "tab", "+", "1", "=", "q", "5"})
	if got, _ := deps.Engine.Display(); got != "43" {
		t.Errorf("display = %q, want 43 (recall 42, add 1, stop at quit)", got)
	}
}

func TestReadScript(t *testing.T) {
	t.Parallel()

	got, err := ReadScript(strings.NewReader("  2+2=\n"))
	if err != nil || got != "2+2=" {
		t.Errorf("ReadScript() = (%q, %v), want (\"2+2=\", nil)", got, err)
	}
	if _, err := ReadScript(strings.NewReader("   ")); !errors.Is(err, ErrNoScript) {
		t.Errorf("ReadScript(blank) error = %v, want ErrNoScript", err)
	}
}
