// ABOUTME: Tests for locale grouping and width-aware alignment
// ABOUTME: Checks English and German separators, partial input, and error passthrough

package display

import "testing"

func TestFormat_English(t *testing.T) {
	t.Parallel()

	f, err := NewFormatter("en")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567.5", "1,234,567.5"},
		{"-1234", "-1,234"},
		{"12.", "12."},
		{".5", "0.5"},
		{"0.3333333333", "0.3333333333"},
		{"Overflow", "Overflow"},
		{"-", "-"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.in, false); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_German(t *testing.T) {
	t.Parallel()

	f, err := NewFormatter("de")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format("1234567.5", false); got != "1.234.567,5" {
		t.Errorf("Format() = %q, want %q", got, "1.234.567,5")
	}
}

func TestFormat_LocaleGrouping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		in     string
		want   string
	}{
		{"en-IN", "1234567.5", "12,34,567.5"},
		{"en-IN", "1234567", "12,34,567"},
		{"en-IN", "-1234567.50", "-12,34,567.50"},
		{"de", "12.", "12,"},
		{"de", "1234.05", "1.234,05"},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.in, func(t *testing.T) {
			t.Parallel()
			f, err := NewFormatter(tt.locale)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.Format(tt.in, false); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatter_Locale(t *testing.T) {
	t.Parallel()

	f, err := NewFormatter("de-CH")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Locale().String(); got != "de-CH" {
		t.Errorf("Locale() = %q, want de-CH", got)
	}
}

func TestFormat_ErrorPassthrough(t *testing.T) {
	t.Parallel()

	f, err := NewFormatter("")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format("1000", true); got != "1000" {
		t.Errorf("error text was reformatted: %q", got)
	}
}

func TestNewFormatter_BadLocale(t *testing.T) {
	t.Parallel()

	if _, err := NewFormatter("not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}

func TestAlignRight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"42", 5, "   42"},
		{"12345", 5, "12345"},
		{"1234567", 5, "1234…"},
		{"7 × 2", 6, " 7 × 2"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := AlignRight(tt.in, tt.width); got != tt.want {
			t.Errorf("AlignRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight() = %q, want %q", got, "ab  ")
	}
	if got := Width("÷"); got != 1 {
		t.Errorf("Width(÷) = %d, want 1", got)
	}
}
