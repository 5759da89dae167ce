// ABOUTME: Locale-aware rendering of display text with digit grouping
// ABOUTME: Integer grouping comes from golang.org/x/text; typed fraction digits are kept verbatim

package display

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders raw engine display text for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	decimal string
}

// NewFormatter builds a Formatter for a BCP 47 locale such as "en" or "de-CH".
// An empty locale means English.
func NewFormatter(locale string) (*Formatter, error) {
	tag := language.English
	if locale != "" {
		t, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
		}
		tag = t
	}

	p := message.NewPrinter(tag)
	f := &Formatter{tag: tag, printer: p, decimal: "."}

	// "1<d>5" with the locale decimal separator.
	if rest, ok := strings.CutPrefix(p.Sprint(number.Decimal(1.5)), "1"); ok {
		if d, found := strings.CutSuffix(rest, "5"); found && d != "" && !hasDigit(d) {
			f.decimal = d
		}
	}
	return f, nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Format groups the integer part of numeric text with the locale's grouping
// rules and swaps in the locale decimal separator. Fraction digits, including
// a trailing "." or trailing zeros typed by the user, are kept as typed. Error
// text and anything that is not a plain decimal number pass through unchanged.
func (f *Formatter) Format(text string, isError bool) string {
	if isError || text == "" {
		return text
	}

	sign := ""
	body := text
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}
	intPart, frac, hasPoint := strings.Cut(body, ".")
	if !allDigits(intPart) || !allDigits(frac) || intPart == "" && !hasPoint {
		return text
	}

	if intPart == "" {
		intPart = "0"
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return text
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.printer.Sprint(number.Decimal(n)))
	if hasPoint {
		b.WriteString(f.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
