// ABOUTME: Help overlay renderer wrapping glamour for the keybinding markdown
// ABOUTME: Caches rendered output keyed by glamour style and width

package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpRenderer renders markdown with caching.
type helpRenderer struct {
	cache map[string]string // "style:width" -> rendered
}

func newHelpRenderer() *helpRenderer {
	return &helpRenderer{cache: make(map[string]string)}
}

// render returns md styled for the terminal with the named glamour standard
// style ("dark" or "light"). On renderer failure the raw markdown is returned.
func (r *helpRenderer) render(md, style string, width int) string {
	if md == "" {
		return ""
	}

	key := fmt.Sprintf("%s:%d", style, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// Trim trailing whitespace that glamour adds
	rendered = strings.TrimRight(rendered, "\n ")
	r.cache[key] = rendered
	return rendered
}
