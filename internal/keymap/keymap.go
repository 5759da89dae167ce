// ABOUTME: Key name to calculator action mapping with O(1) lookup
// ABOUTME: Defaults can be overridden per action from a YAML keymap file

package keymap

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Action is something a key press can trigger.
type Action string

const (
	ActionNone         Action = ""
	ActionDigit        Action = "digit"
	ActionAdd          Action = "add"
	ActionSubtract     Action = "subtract"
	ActionMultiply     Action = "multiply"
	ActionDivide       Action = "divide"
	ActionEvaluate     Action = "evaluate"
	ActionClear        Action = "clear"
	ActionBackspace    Action = "backspace"
	ActionPercent      Action = "percent"
	ActionSqrt         Action = "sqrt"
	ActionUndo         Action = "undo"
	ActionRedo         Action = "redo"
	ActionClearHistory Action = "clearHistory"
	ActionRecall       Action = "recall"
	ActionHistoryUp    Action = "historyUp"
	ActionHistoryDown  Action = "historyDown"
	ActionToggleTheme  Action = "toggleTheme"
	ActionFilter       Action = "filter"
	ActionHelp         Action = "help"
	ActionQuit         Action = "quit"
)

// allActions lists every bindable action in help order.
var allActions = []Action{
	ActionDigit, ActionAdd, ActionSubtract, ActionMultiply, ActionDivide,
	ActionEvaluate, ActionPercent, ActionSqrt, ActionBackspace, ActionClear,
	ActionUndo, ActionRedo,
	ActionHistoryUp, ActionHistoryDown, ActionRecall, ActionFilter, ActionClearHistory,
	ActionToggleTheme, ActionHelp, ActionQuit,
}

// Keymap maps key names (Bubble Tea KeyMsg.String() form, e.g. "ctrl+z",
// "enter", "+") to actions.
type Keymap struct {
	bindings map[Action][]string
	lookup   map[string]Action
}

// file is the on-disk YAML shape.
type file struct {
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns the built-in keymap.
func Default() *Keymap {
	k := &Keymap{bindings: map[Action][]string{
		ActionDigit:        {"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."},
		ActionAdd:          {"+"},
		ActionSubtract:     {"-"},
		ActionMultiply:     {"*"},
		ActionDivide:       {"/"},
		ActionEvaluate:     {"enter", "="},
		ActionClear:        {"esc"},
		ActionBackspace:    {"backspace"},
		ActionPercent:      {"%"},
		ActionSqrt:         {"s"},
		ActionUndo:         {"ctrl+z"},
		ActionRedo:         {"ctrl+y"},
		ActionClearHistory: {"ctrl+x"},
		ActionRecall:       {"tab"},
		ActionHistoryUp:    {"up"},
		ActionHistoryDown:  {"down"},
		ActionToggleTheme:  {"t"},
		ActionFilter:       {"ctrl+f"},
		ActionHelp:         {"?"},
		ActionQuit:         {"q", "ctrl+c"},
	}}
	k.buildLookup()
	return k
}

// Load returns the default keymap with overrides from a YAML file applied.
// A missing file yields the defaults.
func Load(path string) (*Keymap, error) {
	k := Default()
	if path == "" {
		return k, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return k, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing keymap %s: %w", path, err)
	}
	if err := k.Override(f.Bindings); err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return k, nil
}

// Override replaces the keys of each named action. A key claimed by an
// override is removed from every other action. Binding one key to two
// actions in the same override is an error.
func (k *Keymap) Override(over map[string][]string) error {
	claimed := make(map[string]Action)
	for name, keys := range over {
		a := Action(name)
		if !slices.Contains(allActions, a) {
			return fmt.Errorf("unknown action %q", name)
		}
		for _, key := range keys {
			if prev, ok := claimed[key]; ok && prev != a {
				return fmt.Errorf("key %q bound to both %s and %s", key, prev, a)
			}
			claimed[key] = a
		}
	}

	for a, keys := range k.bindings {
		k.bindings[a] = slices.DeleteFunc(slices.Clone(keys), func(key string) bool {
			owner, ok := claimed[key]
			return ok && owner != a
		})
	}
	for name, keys := range over {
		k.bindings[Action(name)] = slices.Clone(keys)
	}
	k.buildLookup()
	return nil
}

// ActionFor returns the action bound to key, or ActionNone.
func (k *Keymap) ActionFor(key string) Action {
	return k.lookup[key]
}

// Keys returns the keys bound to a.
func (k *Keymap) Keys(a Action) []string {
	return slices.Clone(k.bindings[a])
}

func (k *Keymap) buildLookup() {
	k.lookup = make(map[string]Action, len(k.bindings)*2)
	for _, a := range allActions {
		for _, key := range k.bindings[a] {
			k.lookup[key] = a
		}
	}
}
