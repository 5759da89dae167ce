// ABOUTME: Applies engine-level actions to a calculator engine and parses key scripts
// ABOUTME: UI-only actions (history cursor, theme, help, quit) are left to the caller

package keymap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/pi-calc/internal/engine"
)

// Dispatch applies a to e. key is the pressed key, used by ActionDigit.
// Returns false when a is not an engine action.
func Dispatch(e *engine.Engine, a Action, key string) bool {
	switch a {
	case ActionDigit:
		if r, size := utf8.DecodeRuneInString(key); size == len(key) {
			e.AppendDigit(r)
		}
	case ActionAdd:
		e.SetOperation(engine.OpAdd)
	case ActionSubtract:
		e.SetOperation(engine.OpSubtract)
	case ActionMultiply:
		e.SetOperation(engine.OpMultiply)
	case ActionDivide:
		e.SetOperation(engine.OpDivide)
	case ActionEvaluate:
		e.Evaluate()
	case ActionClear:
		e.Clear()
	case ActionBackspace:
		e.Backspace()
	case ActionPercent:
		e.ApplyPercentage()
	case ActionSqrt:
		e.ApplySquareRoot()
	case ActionUndo:
		e.Undo()
	case ActionRedo:
		e.Redo()
	case ActionClearHistory:
		e.ClearHistory()
	default:
		return false
	}
	return true
}

// ParseScript splits a key script into key names. Every non-space rune is a
// key of its own; named keys are written in angle brackets, e.g.
// "12<backspace>3+4<enter>".
func ParseScript(script string) ([]string, error) {
	var keys []string
	for i := 0; i < len(script); {
		r, size := utf8.DecodeRuneInString(script[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '<':
			end := strings.IndexByte(script[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated key name at offset %d", i)
			}
			name := script[i+1 : i+end]
			if name == "" {
				return nil, fmt.Errorf("empty key name at offset %d", i)
			}
			keys = append(keys, name)
			i += end + 1
		default:
			keys = append(keys, string(r))
			i += size
		}
	}
	return keys, nil
}
