// ABOUTME: Tests for operand formatting, parsing, classification, and enum text forms
// ABOUTME: Table-driven; checks rounding keeps precision rather than cutting strings

package engine

import (
	"math"
	"testing"
)

func TestFormatOperand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{7, "7"},
		{-3.5, "-3.5"},
		{1234567890, "1234567890"},
		{0.1 + 0.2, "0.3"},
		{2.0 / 3.0, "0.6666666667"},
		{12345678901, "12345678900"},
		{1e15, "1000000000000000"},
		{0.00012345678912, "0.0001234567891"},
	}
	for _, tt := range tests {
		if got := FormatOperand(tt.in); got != tt.want {
			t.Errorf("FormatOperand(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseOperand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"42", 42, true},
		{"5.", 5, true},
		{".5", 0.5, true},
		{"", 0, false},
		{".", 0, false},
		{"Error", 0, false},
		{"Cannot divide by zero", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseOperand(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseOperand(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want ErrorKind
	}{
		{1, ErrNone},
		{0, ErrNone},
		{-MaxMagnitude, ErrNone},
		{MaxMagnitude * 10, ErrOverflow},
		{math.Inf(-1), ErrOverflow},
		{math.NaN(), ErrInvalidInput},
		{1e-20, ErrUnderflow},
		{-1e-20, ErrUnderflow},
	}
	for _, tt := range tests {
		if got := classify(tt.in); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOperation_TextForms(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		got, err := ParseOperation(op.String())
		if err != nil || got != op {
			t.Errorf("ParseOperation(%q) = (%v, %v), want %v", op.String(), got, err, op)
		}
		if op.Symbol() == "" {
			t.Errorf("%v has no symbol", op)
		}
	}
	if _, err := ParseOperation("modulo"); err == nil {
		t.Error("ParseOperation(\"modulo\") should fail")
	}
	if OpNone.Valid() || Operation(9).Valid() {
		t.Error("OpNone and out-of-range values must not be valid")
	}
}

func TestErrorKind_MessagesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []ErrorKind{ErrDivideByZero, ErrOverflow, ErrUnderflow, ErrInvalidInput, ErrGeneric} {
		if got := kindOf(k.Message()); got != k {
			t.Errorf("kindOf(%q) = %v, want %v", k.Message(), got, k)
		}
		if got, err := parseErrorKind(k.String()); err != nil || got != k {
			t.Errorf("parseErrorKind(%q) = (%v, %v)", k.String(), got, err)
		}
	}
	if kindOf("12") != ErrNone {
		t.Error("numeric text classified as an error")
	}
}
