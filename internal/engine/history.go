// ABOUTME: HistoryEntry type and the bounded most-recent-first history list
// ABOUTME: Entries are immutable values; insertion past capacity evicts the oldest

package engine

import (
	"fmt"
	"math"
)

// HistoryCapacity is the maximum number of retained history entries.
const HistoryCapacity = 10

// HistoryEntry records one evaluated binary operation.
// When Err is not ErrNone the entry has no numeric Result.
type HistoryEntry struct {
	FirstOperand  float64
	Operation     Operation
	SecondOperand float64
	Result        float64
	Err           ErrorKind
}

// String formats the entry as "3 + 4 = 7".
func (e HistoryEntry) String() string {
	result := e.Err.Message()
	if e.Err == ErrNone {
		result = FormatOperand(e.Result)
	}
	return fmt.Sprintf("%s %s %s = %s",
		FormatOperand(e.FirstOperand), e.Operation.Symbol(), FormatOperand(e.SecondOperand), result)
}

// validate rejects entries that could not have come from an evaluation.
func (e HistoryEntry) validate() error {
	if !e.Operation.Valid() {
		return fmt.Errorf("history entry: invalid operation %d", int(e.Operation))
	}
	for _, v := range []float64{e.FirstOperand, e.SecondOperand, e.Result} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("history entry: non-finite operand")
		}
	}
	return nil
}

// history is a most-recent-first list bounded at HistoryCapacity.
type history struct {
	entries []HistoryEntry
}

// newHistory hydrates a history, keeping the first HistoryCapacity entries
// (the most recent ones).
func newHistory(entries []HistoryEntry) history {
	n := min(len(entries), HistoryCapacity)
	h := history{entries: make([]HistoryEntry, n, HistoryCapacity+1)}
	copy(h.entries, entries[:n])
	return h
}

func (h *history) insert(e HistoryEntry) {
	h.entries = append(h.entries, HistoryEntry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
}

func (h *history) clear() {
	h.entries = h.entries[:0]
}

func (h *history) at(i int) (HistoryEntry, bool) {
	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[i], true
}

func (h *history) snapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *history) lines() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.String()
	}
	return out
}
