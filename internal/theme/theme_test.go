// ABOUTME: Tests for built-in theme lookup and toggling
// ABOUTME: Dark and light must swap symmetrically

package theme

import "testing"

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{NameDark, NameLight} {
		th, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, th.Name)
		}
	}
	if _, err := ByName("solarized"); err == nil {
		t.Error("ByName(\"solarized\") should fail")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	d := Dark()
	if got := d.Toggle(); got.Name != NameLight || got.Dark {
		t.Errorf("Dark().Toggle() = %q (dark=%v), want light", got.Name, got.Dark)
	}
	if got := d.Toggle().Toggle(); got.Name != NameDark || !got.Dark {
		t.Errorf("double toggle = %q, want dark", got.Name)
	}
}
