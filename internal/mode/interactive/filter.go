// ABOUTME: Fuzzy filtering of formatted history lines via sahilm/fuzzy
// ABOUTME: Matches keep the original history index so recall targets the right entry

package interactive

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// historyMatch is a history line selected by the filter.
type historyMatch struct {
	index   int // position in the engine history
	line    string
	matched []int
}

// filterHistory returns the lines matching query, best match first. An empty
// query matches every line in history order.
func filterHistory(query string, lines []string) []historyMatch {
	if query == "" {
		out := make([]historyMatch, len(lines))
		for i, l := range lines {
			out[i] = historyMatch{index: i, line: l}
		}
		return out
	}

	results := fuzzy.Find(query, lines)
	out := make([]historyMatch, len(results))
	for i, r := range results {
		out[i] = historyMatch{index: r.Index, line: r.Str, matched: r.MatchedIndexes}
	}
	return out
}

// highlight wraps matched characters of m.line with hl.
func highlight(m historyMatch, plain, hl func(string) string) string {
	if len(m.matched) == 0 {
		return plain(m.line)
	}
	hit := make(map[int]bool, len(m.matched))
	for _, i := range m.matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range m.line {
		if hit[i] {
			b.WriteString(hl(string(r)))
		} else {
			b.WriteString(plain(string(r)))
		}
	}
	return b.String()
}
