// ABOUTME: Binary operation enum with text and symbol forms
// ABOUTME: Text forms (add/subtract/...) are used for persistence and keymaps

package engine

import "fmt"

// Operation is a pending binary arithmetic operation.
type Operation int

const (
	// OpNone means no operation is pending.
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Valid reports whether op is one of the four binary operations.
func (op Operation) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// String returns the text form of the operation.
func (op Operation) String() string {
	switch op {
	case OpNone:
		return ""
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Symbol returns the display symbol, or "" for OpNone.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// ParseOperation converts a text form back to an Operation.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "":
		return OpNone, nil
	case "add":
		return OpAdd, nil
	case "subtract":
		return OpSubtract, nil
	case "multiply":
		return OpMultiply, nil
	case "divide":
		return OpDivide, nil
	default:
		return OpNone, fmt.Errorf("unknown operation %q", s)
	}
}

// apply computes a op b without any error classification.
func (op Operation) apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return 0
	}
}
