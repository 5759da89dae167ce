// ABOUTME: CalculatorEngine: input accumulation, deferred binary evaluation, history, undo/redo
// ABOUTME: Single-threaded; notifies injected display and history sinks after each mutation

package engine

import (
	"math"

	"github.com/mauromedda/pi-calc/internal/undo"
)

// DefaultUndoDepth is the number of evaluation checkpoints kept when
// Options.UndoDepth is zero.
const DefaultUndoDepth = 50

// DisplaySink renders the current display text.
type DisplaySink interface {
	RenderDisplay(text string, isError bool)
}

// HistorySink renders formatted history entries, most recent first.
type HistorySink interface {
	RenderHistory(entries []string)
}

// DisplayFunc adapts a function to DisplaySink.
type DisplayFunc func(text string, isError bool)

// RenderDisplay calls f.
func (f DisplayFunc) RenderDisplay(text string, isError bool) { f(text, isError) }

// HistoryFunc adapts a function to HistorySink.
type HistoryFunc func(entries []string)

// RenderHistory calls f.
func (f HistoryFunc) RenderHistory(entries []string) { f(entries) }

// EngineState is the undoable unit of engine state.
// FirstOperand is nil when no first operand has been entered.
type EngineState struct {
	PendingInput string
	FirstOperand *float64
	Operation    Operation
}

// clone copies s so that snapshots never share the operand pointer.
func (s EngineState) clone() EngineState {
	out := EngineState{PendingInput: s.PendingInput, Operation: s.Operation}
	if s.FirstOperand != nil {
		v := *s.FirstOperand
		out.FirstOperand = &v
	}
	return out
}

// Options configures a new Engine. All fields are optional.
type Options struct {
	Display   DisplaySink
	History   HistorySink
	Entries   []HistoryEntry // hydrated history, most recent first
	UndoDepth int
}

// Engine is the calculator state machine. It is not safe for concurrent use.
type Engine struct {
	pendingInput string
	firstOperand *float64
	operation    Operation

	history history
	stack   *undo.Stack[EngineState]

	display     DisplaySink
	historySink HistorySink
}

// New creates an Engine in the initial ("", None, None) state.
func New(opts Options) *Engine {
	depth := opts.UndoDepth
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &Engine{
		history:     newHistory(opts.Entries),
		stack:       undo.New[EngineState](depth),
		display:     opts.Display,
		historySink: opts.History,
	}
}

// AppendDigit appends a digit or decimal point to the pending input.
// Anything other than [0-9.] is ignored, as is a second decimal point or a
// digit past MaxDigits.
func (e *Engine) AppendDigit(ch rune) {
	if (ch < '0' || ch > '9') && ch != '.' {
		return
	}

	input := e.pendingInput
	if e.errorDisplayed() {
		input = ""
	}
	if ch == '.' {
		for _, r := range input {
			if r == '.' {
				return
			}
		}
	} else if digitCount(input) >= MaxDigits {
		return
	}

	e.pendingInput = input + string(ch)
	e.stack.ClearRedo()
	e.notifyDisplay()
}

// SetOperation arms op, chaining a pending evaluation when a second operand
// has already been typed.
func (e *Engine) SetOperation(op Operation) {
	if !op.Valid() || e.pendingInput == "" && e.firstOperand == nil {
		return
	}

	switch {
	case e.pendingInput == "":
		// Operator change before the second operand.
		e.operation = op

	case e.firstOperand == nil || e.operation == OpNone:
		v, ok := parseOperand(e.pendingInput)
		if !ok {
			return
		}
		e.firstOperand = &v
		e.pendingInput = ""
		e.operation = op

	default:
		if _, ok := parseOperand(e.pendingInput); !ok {
			return
		}
		if !e.evaluate() {
			e.notifyDisplay()
			return
		}
		v, _ := parseOperand(e.pendingInput)
		e.firstOperand = &v
		e.pendingInput = ""
		e.operation = op
	}

	e.stack.ClearRedo()
	e.notifyDisplay()
}

// Evaluate computes the pending operation. It is a no-op unless an operation
// is pending and the pending input parses as the second operand.
func (e *Engine) Evaluate() {
	if e.operation == OpNone || e.firstOperand == nil {
		return
	}
	if _, ok := parseOperand(e.pendingInput); !ok {
		return
	}
	e.evaluate()
	e.notifyDisplay()
}

// evaluate performs the evaluation whose preconditions the caller checked.
// It reports whether the result was a valid operand.
func (e *Engine) evaluate() bool {
	before := e.State()
	first := *e.firstOperand
	second, _ := parseOperand(e.pendingInput)
	op := e.operation

	e.firstOperand = nil
	e.operation = OpNone

	var (
		kind   ErrorKind
		result float64
	)
	if op == OpDivide && second == 0 {
		kind = ErrDivideByZero
	} else {
		result = op.apply(first, second)
		kind = classify(result)
	}
	if kind != ErrNone {
		e.pendingInput = kind.Message()
		e.stack.ClearRedo()
		return false
	}

	text := FormatOperand(result)
	rounded, _ := parseOperand(text)
	e.pendingInput = text
	e.history.insert(HistoryEntry{
		FirstOperand:  first,
		Operation:     op,
		SecondOperand: second,
		Result:        rounded,
	})
	e.stack.Checkpoint(before)
	e.notifyHistory()
	return true
}

// ApplyPercentage divides the pending input by 100.
func (e *Engine) ApplyPercentage() {
	v, ok := parseOperand(e.pendingInput)
	if !ok {
		return
	}
	e.setResult(v / 100)
}

// ApplySquareRoot replaces the pending input with its square root. A negative
// value shows the generic error sentinel.
func (e *Engine) ApplySquareRoot() {
	v, ok := parseOperand(e.pendingInput)
	if !ok {
		return
	}
	if v < 0 {
		e.setPending(ErrGeneric.Message())
		return
	}
	e.setResult(math.Sqrt(v))
}

// setResult shows a unary result, or its error message when the result is
// out of range under the same rules as Evaluate.
func (e *Engine) setResult(v float64) {
	if kind := classify(v); kind != ErrNone {
		e.setPending(kind.Message())
		return
	}
	e.setPending(FormatOperand(v))
}

// Backspace removes the last character of the pending input. An error
// message is removed as a whole. Empty pending input renders as "0" but stays
// empty, so the next digit replaces the zero.
func (e *Engine) Backspace() {
	switch {
	case e.pendingInput == "":
		return
	case e.errorDisplayed():
		e.setPending("")
	default:
		rest := e.pendingInput[:len(e.pendingInput)-1]
		if rest == "-" {
			rest = ""
		}
		e.setPending(rest)
	}
}

// Clear resets the state to its initial value. History and the undo/redo
// stacks are left untouched, so a Redo after Clear still restores the undone
// evaluation.
func (e *Engine) Clear() {
	e.pendingInput = ""
	e.firstOperand = nil
	e.operation = OpNone
	e.notifyDisplay()
}

// Undo restores the state saved before the most recent evaluation.
func (e *Engine) Undo() {
	prev, ok := e.stack.Undo(e.State())
	if !ok {
		return
	}
	e.restore(prev)
}

// Redo re-applies the most recently undone state.
func (e *Engine) Redo() {
	next, ok := e.stack.Redo(e.State())
	if !ok {
		return
	}
	e.restore(next)
}

// RecallFromHistory loads the result of history entry index into the pending
// input. The first operand and operation are left untouched.
func (e *Engine) RecallFromHistory(index int) error {
	entry, ok := e.history.at(index)
	if !ok {
		return ErrIndexOutOfRange
	}
	if entry.Err != ErrNone {
		return ErrNoResult
	}
	e.setPending(FormatOperand(entry.Result))
	return nil
}

// ClearHistory empties the history. State and undo/redo stacks are untouched.
func (e *Engine) ClearHistory() {
	e.history.clear()
	e.notifyHistory()
}

// State returns a copy of the current undoable state.
func (e *Engine) State() EngineState {
	return EngineState{
		PendingInput: e.pendingInput,
		FirstOperand: e.firstOperand,
		Operation:    e.operation,
	}.clone()
}

// Display returns the text to render and whether it is an error message.
func (e *Engine) Display() (string, bool) {
	if e.pendingInput == "" {
		return "0", false
	}
	return e.pendingInput, e.errorDisplayed()
}

// Expression returns the pending left-hand side, e.g. "3 +", or "" when no
// operation is armed.
func (e *Engine) Expression() string {
	if e.firstOperand == nil || e.operation == OpNone {
		return ""
	}
	return FormatOperand(*e.firstOperand) + " " + e.operation.Symbol()
}

// History returns a copy of the history, most recent first.
func (e *Engine) History() []HistoryEntry {
	return e.history.snapshot()
}

// HistoryLines returns the formatted history, most recent first.
func (e *Engine) HistoryLines() []string {
	return e.history.lines()
}

// MarshalHistory returns the serializable history snapshot.
func (e *Engine) MarshalHistory() ([]byte, error) {
	return MarshalHistoryEntries(e.history.entries)
}

// CanUndo reports whether Undo would change the state.
func (e *Engine) CanUndo() bool { return e.stack.CanUndo() }

// CanRedo reports whether Redo would change the state.
func (e *Engine) CanRedo() bool { return e.stack.CanRedo() }

func (e *Engine) errorDisplayed() bool {
	return kindOf(e.pendingInput) != ErrNone
}

func (e *Engine) setPending(text string) {
	e.pendingInput = text
	e.stack.ClearRedo()
	e.notifyDisplay()
}

// restore overwrites every state field from s.
func (e *Engine) restore(s EngineState) {
	s = s.clone()
	e.pendingInput = s.PendingInput
	e.firstOperand = s.FirstOperand
	e.operation = s.Operation
	e.notifyDisplay()
}

func (e *Engine) notifyDisplay() {
	if e.display == nil {
		return
	}
	text, isErr := e.Display()
	e.display.RenderDisplay(text, isErr)
}

func (e *Engine) notifyHistory() {
	if e.historySink == nil {
		return
	}
	e.historySink.RenderHistory(e.history.lines())
}
