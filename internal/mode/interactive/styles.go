// ABOUTME: Lipgloss styles derived from the active calculator theme
// ABOUTME: Rebuilt only when the theme is toggled

package interactive

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-calc/internal/theme"
)

// styles holds pre-built lipgloss styles for every UI role.
type styles struct {
	display    lipgloss.Style
	error      lipgloss.Style
	expression lipgloss.Style
	history    lipgloss.Style
	selected   lipgloss.Style
	box        lipgloss.Style
	title      lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := t.Palette
	return styles{
		display:    lipgloss.NewStyle().Foreground(p.Display).Bold(true),
		error:      lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		expression: lipgloss.NewStyle().Foreground(p.Expression),
		history:    lipgloss.NewStyle().Foreground(p.History),
		selected:   lipgloss.NewStyle().Foreground(p.Selection).Bold(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		title:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(p.Muted),
		accent: lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
	}
}
