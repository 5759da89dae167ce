// ABOUTME: AppDeps bundles all external dependencies for the interactive mode
// ABOUTME: The model builds and owns the engine; callers pass only hydrated history and settings

package interactive

import (
	"github.com/mauromedda/pi-calc/internal/display"
	"github.com/mauromedda/pi-calc/internal/engine"
	"github.com/mauromedda/pi-calc/internal/keymap"
	"github.com/mauromedda/pi-calc/internal/store"
	"github.com/mauromedda/pi-calc/internal/theme"
)

// AppDeps provides the collaborators of the interactive calculator.
type AppDeps struct {
	Version   string
	History   []engine.HistoryEntry // hydrated from the store, most recent first
	UndoDepth int
	Keymap    *keymap.Keymap     // nil uses keymap.Default()
	Formatter *display.Formatter // nil renders raw engine text
	Store     store.Store        // nil disables persistence
	Theme     theme.Theme
}
