// ABOUTME: Entry point for the Bubble Tea interactive calculator
// ABOUTME: Creates the tea.Program on the alternate screen and blocks until exit

package interactive

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive calculator. Blocks until the user quits, then
// writes the final history and theme to the store.
func Run(deps AppDeps) error {
	p := tea.NewProgram(
		NewAppModel(deps),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	if m, ok := final.(AppModel); ok {
		return m.flush(context.Background())
	}
	return nil
}
