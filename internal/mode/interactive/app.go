// ABOUTME: Root AppModel for the Bubble Tea calculator: display, history panel, filter, help overlay
// ABOUTME: Routes keys through the keymap to the engine and schedules persistence after mutations

package interactive

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-calc/internal/display"
	"github.com/mauromedda/pi-calc/internal/engine"
	"github.com/mauromedda/pi-calc/internal/keymap"
	"github.com/mauromedda/pi-calc/internal/log"
	"github.com/mauromedda/pi-calc/internal/store"
	"github.com/mauromedda/pi-calc/internal/theme"
)

const (
	defaultWidth = 40
	minWidth     = 24
	maxWidth     = 56
)

// shared holds state that must survive AppModel value copies. The engine
// notifies it through the display and history sink interfaces.
type shared struct {
	engine *engine.Engine

	displayText  string
	displayError bool
	historyLines []string
	historyDirty bool
}

// RenderDisplay implements engine.DisplaySink.
func (s *shared) RenderDisplay(text string, isError bool) {
	s.displayText = text
	s.displayError = isError
}

// RenderHistory implements engine.HistorySink.
func (s *shared) RenderHistory(entries []string) {
	s.historyLines = entries
	s.historyDirty = true
}

// AppModel is the root Bubble Tea model for the calculator.
type AppModel struct {
	sh *shared // survives value copies

	keys      *keymap.Keymap
	formatter *display.Formatter
	persist   *persister
	theme     theme.Theme
	styles    styles
	help      *helpRenderer
	version   string

	width, height int

	selected  int // history cursor; -1 when nothing is selected
	showHelp  bool
	filtering bool
	query     string
	status    string
}

// NewAppModel creates an AppModel and the engine it drives.
func NewAppModel(deps AppDeps) AppModel {
	sh := &shared{}
	sh.engine = engine.New(engine.Options{
		Display:   sh,
		History:   sh,
		Entries:   deps.History,
		UndoDepth: deps.UndoDepth,
	})
	sh.displayText, sh.displayError = sh.engine.Display()
	sh.historyLines = sh.engine.HistoryLines()

	keys := deps.Keymap
	if keys == nil {
		keys = keymap.Default()
	}
	th := deps.Theme
	if th.Name == "" {
		th = theme.Dark()
	}

	return AppModel{
		sh:        sh,
		keys:      keys,
		formatter: deps.Formatter,
		persist:   newPersister(deps.Store),
		theme:     th,
		styles:    newStyles(th),
		help:      newHelpRenderer(),
		version:   deps.Version,
		width:     defaultWidth,
		selected:  -1,
	}
}

// Engine returns the engine driven by the model.
func (m AppModel) Engine() *engine.Engine {
	return m.sh.engine
}

// Init returns nil; the calculator has no startup commands.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case persistedMsg:
		if s := handlePersisted(msg); s != "" {
			m.status = s
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status = ""

	if m.showHelp {
		switch m.keys.ActionFor(key) {
		case keymap.ActionHelp, keymap.ActionClear, keymap.ActionQuit:
			m.showHelp = false
		}
		return m, nil
	}

	action := m.keys.ActionFor(key)
	if m.filtering {
		// Printable quit keys such as "q" are query text while filtering.
		if action == keymap.ActionQuit && msg.Type != tea.KeyRunes {
			return m, tea.Quit
		}
		return m.handleFilterKey(msg)
	}

	if keymap.Dispatch(m.sh.engine, action, key) {
		return m, m.afterMutation()
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
	case keymap.ActionToggleTheme:
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)
		lipgloss.SetHasDarkBackground(m.theme.Dark)
		return m, m.persist.saveCmd(store.KeyTheme, m.theme.Name)
	case keymap.ActionHistoryUp:
		if m.selected > 0 {
			m.selected--
		}
	case keymap.ActionHistoryDown:
		if m.selected < len(m.sh.historyLines)-1 {
			m.selected++
		}
	case keymap.ActionRecall:
		m.recall(m.selected)
	case keymap.ActionFilter:
		m.filtering = true
		m.query = ""
	}
	return m, nil
}

func (m AppModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
	case tea.KeyEnter:
		matches := filterHistory(m.query, m.sh.historyLines)
		m.filtering = false
		if len(matches) == 0 {
			m.status = "no matching history"
			return m, nil
		}
		m.selected = matches[0].index
		m.recall(matches[0].index)
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
	}
	return m, nil
}

// recall loads history entry i into the engine, reporting failures on the
// status line.
func (m *AppModel) recall(i int) {
	err := m.sh.engine.RecallFromHistory(i)
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrIndexOutOfRange):
		m.status = "select a history entry first"
	default:
		m.status = err.Error()
	}
}

// afterMutation keeps the history cursor in range and schedules a save when
// the history changed.
func (m *AppModel) afterMutation() tea.Cmd {
	if !m.sh.historyDirty {
		return nil
	}
	m.sh.historyDirty = false
	if m.selected >= len(m.sh.historyLines) {
		m.selected = len(m.sh.historyLines) - 1
	}

	if len(m.sh.historyLines) == 0 {
		return m.persist.saveCmd(store.KeyHistory, "")
	}
	data, err := m.sh.engine.MarshalHistory()
	if err != nil {
		log.Error("encoding history: %v", err)
		return nil
	}
	return m.persist.saveCmd(store.KeyHistory, string(data))
}

// View renders the calculator.
func (m AppModel) View() string {
	w := min(max(m.width-2, minWidth), maxWidth)
	inner := w - 4 // border + padding

	expr := m.sh.engine.Expression()
	text := m.sh.displayText
	if m.formatter != nil {
		text = m.formatter.Format(text, m.sh.displayError)
	}
	textStyle := m.styles.display
	if m.sh.displayError {
		textStyle = m.styles.error
	}

	screen := m.styles.box.Width(w - 2).Render(
		m.styles.expression.Render(display.AlignRight(expr, inner)) + "\n" +
			textStyle.Render(display.AlignRight(text, inner)),
	)

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.help.render(m.keys.HelpMarkdown(), m.theme.Name, w))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.viewHistory(w))
	b.WriteString(m.viewFooter(w))
	return b.String()
}

func (m AppModel) viewHistory(w int) string {
	var b strings.Builder
	if m.filtering {
		b.WriteString(m.styles.title.Render("Filter: ") + m.query + "\n")
	} else {
		b.WriteString(m.styles.title.Render("History") + "\n")
	}

	query := ""
	if m.filtering {
		query = m.query
	}
	matches := filterHistory(query, m.sh.historyLines)
	if len(matches) == 0 {
		b.WriteString(m.styles.muted.Render("  (empty)") + "\n")
	}
	for _, hm := range matches {
		hm.line = display.Truncate(hm.line, w-2)
		if hm.index == m.selected && !m.filtering {
			b.WriteString(m.styles.selected.Render("> "+hm.line) + "\n")
			continue
		}
		b.WriteString("  " + highlight(hm,
			func(s string) string { return m.styles.history.Render(s) },
			func(s string) string { return m.styles.accent.Render(s) }) + "\n")
	}
	return b.String()
}

func (m AppModel) viewFooter(w int) string {
	left := m.status
	if left == "" {
		left = "? help · t theme · q quit"
	}
	right := m.theme.Name
	if m.version != "" {
		right = m.version + " · " + right
	}
	leftWidth := max(w-display.Width(right)-1, 1)
	return m.styles.muted.Render(display.PadRight(left, leftWidth)+" "+right) + "\n"
}
