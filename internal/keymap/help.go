// ABOUTME: Markdown help table of the active keybindings
// ABOUTME: Rendered by the interactive mode's help overlay

package keymap

import (
	"fmt"
	"strings"
)

var actionHelp = map[Action]string{
	ActionDigit:        "Enter a digit or decimal point",
	ActionAdd:          "Add",
	ActionSubtract:     "Subtract",
	ActionMultiply:     "Multiply",
	ActionDivide:       "Divide",
	ActionEvaluate:     "Evaluate",
	ActionPercent:      "Percentage",
	ActionSqrt:         "Square root",
	ActionBackspace:    "Delete last character",
	ActionClear:        "Clear",
	ActionUndo:         "Undo last calculation",
	ActionRedo:         "Redo",
	ActionHistoryUp:    "Select newer history entry",
	ActionHistoryDown:  "Select older history entry",
	ActionRecall:       "Recall selected history result",
	ActionFilter:       "Filter history",
	ActionClearHistory: "Clear history",
	ActionToggleTheme:  "Toggle light/dark theme",
	ActionHelp:         "Toggle this help",
	ActionQuit:         "Quit",
}

// HelpMarkdown returns a markdown table of every bound action.
func (k *Keymap) HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n| Key | Action |\n|---|---|\n")
	for _, a := range allActions {
		keys := k.bindings[a]
		if len(keys) == 0 {
			continue
		}
		label := strings.Join(keys, " ")
		if a == ActionDigit && len(keys) > 3 {
			label = keys[0] + "-" + keys[len(keys)-1]
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", strings.ReplaceAll(label, "|", `\|`), actionHelp[a])
	}
	return b.String()
}
