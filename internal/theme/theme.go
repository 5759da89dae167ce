// ABOUTME: Light and dark colour themes for the calculator UI
// ABOUTME: Palette maps semantic roles to lipgloss colours; the name is what gets persisted

package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Names of the built-in themes. These are also the persisted values.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Palette holds the semantic colours used by the UI.
type Palette struct {
	Display    lipgloss.Color
	Error      lipgloss.Color
	Expression lipgloss.Color
	History    lipgloss.Color
	Selection  lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
	// Dark reports whether the palette is meant for a dark background.
	Dark bool
}

// Dark returns the dark theme.
func Dark() Theme {
	return Theme{
		Name: NameDark,
		Dark: true,
		Palette: Palette{
			Display:    lipgloss.Color("15"),
			Error:      lipgloss.Color("9"),
			Expression: lipgloss.Color("245"),
			History:    lipgloss.Color("250"),
			Selection:  lipgloss.Color("208"),
			Border:     lipgloss.Color("240"),
			Muted:      lipgloss.Color("242"),
			Accent:     lipgloss.Color("208"),
		},
	}
}

// Light returns the light theme.
func Light() Theme {
	return Theme{
		Name: NameLight,
		Palette: Palette{
			Display:    lipgloss.Color("0"),
			Error:      lipgloss.Color("1"),
			Expression: lipgloss.Color("242"),
			History:    lipgloss.Color("238"),
			Selection:  lipgloss.Color("25"),
			Border:     lipgloss.Color("250"),
			Muted:      lipgloss.Color("246"),
			Accent:     lipgloss.Color("25"),
		},
	}
}

// ByName returns the built-in theme called name.
func ByName(name string) (Theme, error) {
	switch name {
	case NameDark:
		return Dark(), nil
	case NameLight:
		return Light(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Toggle returns the opposite built-in theme.
func (t Theme) Toggle() Theme {
	if t.Name == NameDark {
		return Light()
	}
	return Dark()
}
