// ABOUTME: Operand parsing, result classification, and display-capped formatting
// ABOUTME: Rounds to 10 significant digits by re-parsing, never by cutting the string

package engine

import (
	"math"
	"strconv"
)

const (
	// MaxDigits is the display cap on typed digits and result significant digits.
	MaxDigits = 10

	// MaxMagnitude bounds representable results; larger is Overflow.
	MaxMagnitude = 1e15
	// MinMagnitude bounds nonzero results; smaller is Underflow.
	MinMagnitude = 1e-15
)

// FormatOperand renders v as display text. Values whose plain form is longer
// than MaxDigits characters are rounded to MaxDigits significant digits.
func FormatOperand(v float64) string {
	if v == 0 {
		// Collapse -0.
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) <= MaxDigits {
		return s
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', MaxDigits, 64), 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// parseOperand parses pending input into a finite operand.
func parseOperand(s string) (float64, bool) {
	if s == "" || kindOf(s) != ErrNone {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// classify maps a raw computed value to an error kind, or ErrNone when the
// value is a representable operand.
func classify(v float64) ErrorKind {
	switch {
	case math.IsNaN(v):
		return ErrInvalidInput
	case math.IsInf(v, 0), math.Abs(v) > MaxMagnitude:
		return ErrOverflow
	case v != 0 && math.Abs(v) < MinMagnitude:
		return ErrUnderflow
	default:
		return ErrNone
	}
}

// digitCount counts the decimal digits in s.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
