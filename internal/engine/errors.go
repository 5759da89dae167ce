// ABOUTME: Arithmetic error kinds shown on the display and engine sentinel errors
// ABOUTME: Kinds round-trip through their message text so restored state stays classified

package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an arithmetic fault. ErrNone means no fault.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrDivideByZero
	ErrOverflow
	ErrUnderflow
	ErrInvalidInput
	// ErrGeneric is the plain "Error" sentinel for call sites that do not
	// distinguish a kind.
	ErrGeneric
)

var (
	// ErrIndexOutOfRange is returned when recalling a history index that does not exist.
	ErrIndexOutOfRange = errors.New("history index out of range")
	// ErrNoResult is returned when recalling an entry whose result is an error.
	ErrNoResult = errors.New("history entry has no numeric result")
)

var kindMessages = map[ErrorKind]string{
	ErrDivideByZero: "Cannot divide by zero",
	ErrOverflow:     "Overflow",
	ErrUnderflow:    "Underflow",
	ErrInvalidInput: "Invalid input",
	ErrGeneric:      "Error",
}

var kindNames = map[ErrorKind]string{
	ErrNone:         "",
	ErrDivideByZero: "divide_by_zero",
	ErrOverflow:     "overflow",
	ErrUnderflow:    "underflow",
	ErrInvalidInput: "invalid_input",
	ErrGeneric:      "error",
}

// Message returns the text put on the display for this kind.
func (k ErrorKind) Message() string {
	return kindMessages[k]
}

// String returns the stable identifier used in persisted history.
func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// parseErrorKind is the inverse of String.
func parseErrorKind(s string) (ErrorKind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return ErrNone, fmt.Errorf("unknown error kind %q", s)
}

// kindOf returns the kind whose message equals text, or ErrNone.
func kindOf(text string) ErrorKind {
	for k, msg := range kindMessages {
		if msg == text {
			return k
		}
	}
	return ErrNone
}
