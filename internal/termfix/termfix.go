// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() can query the terminal
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ThemeEnv selects the initial background guess ("light" or anything else for dark).
const ThemeEnv = "PI_CALC_THEME"

func init() {
	// An explicit background stops lipgloss from sending OSC 10/11 queries
	// whose replies would otherwise arrive as key input. The real theme is
	// applied later from settings or the persisted preference.
	lipgloss.SetHasDarkBackground(os.Getenv(ThemeEnv) != "light")
}
