// ABOUTME: Sequenced persistence for history and theme: async saves plus a final flush on exit
// ABOUTME: Each write carries a per-key sequence number; a write older than the last one stored is dropped

package interactive

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pi-calc/internal/log"
	"github.com/mauromedda/pi-calc/internal/store"
)

// persistedMsg reports the outcome of a background save.
type persistedMsg struct {
	key   string
	err   error
	stale bool // superseded by a newer write and skipped
}

// persister orders writes to a store. Sequence numbers are issued on the
// Update goroutine; writes run in tea.Cmd goroutines and may finish in any
// order, so each key only accepts a sequence newer than the last one written.
type persister struct {
	store store.Store

	seqMu  sync.Mutex
	issued map[string]uint64

	writeMu sync.Mutex
	written map[string]uint64
}

// newPersister returns nil when s is nil, which disables persistence.
func newPersister(s store.Store) *persister {
	if s == nil {
		return nil
	}
	return &persister{
		store:   s,
		issued:  make(map[string]uint64),
		written: make(map[string]uint64),
	}
}

func (p *persister) next(key string) uint64 {
	p.seqMu.Lock()
	defer p.seqMu.Unlock()
	p.issued[key]++
	return p.issued[key]
}

// write stores value under key unless a newer sequence already landed. An
// empty value deletes the key. Reports whether the write was applied.
func (p *persister) write(key string, seq uint64, value string) (bool, error) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	if seq <= p.written[key] {
		return false, nil
	}
	p.written[key] = seq
	if value == "" {
		return true, p.store.Delete(key)
	}
	return true, p.store.Save(key, value)
}

// saveCmd schedules a background write of value under key.
func (p *persister) saveCmd(key, value string) tea.Cmd {
	if p == nil {
		return nil
	}
	seq := p.next(key)
	return func() tea.Msg {
		applied, err := p.write(key, seq, value)
		return persistedMsg{key: key, err: err, stale: !applied}
	}
}

// flush writes values concurrently with sequence numbers newer than every
// save issued so far, so in-flight saves that finish later are dropped.
func (p *persister) flush(ctx context.Context, values map[string]string) error {
	if p == nil {
		return nil
	}
	seqs := make(map[string]uint64, len(values))
	for k := range values {
		seqs[k] = p.next(k)
	}
	return store.SaveAll(ctx, sequencedStore{p: p, seqs: seqs}, values)
}

// sequencedStore routes store writes through the persister with fixed
// sequence numbers.
type sequencedStore struct {
	p    *persister
	seqs map[string]uint64
}

func (s sequencedStore) Load(key string) (string, bool, error) {
	return s.p.store.Load(key)
}

func (s sequencedStore) Save(key, value string) error {
	_, err := s.p.write(key, s.seqs[key], value)
	return err
}

func (s sequencedStore) Delete(key string) error {
	_, err := s.p.write(key, s.seqs[key], "")
	return err
}

// handlePersisted logs the outcome of a save and returns a status line.
func handlePersisted(msg persistedMsg) string {
	switch {
	case msg.err != nil:
		log.Warn("persist %s: %v", msg.key, msg.err)
		return "could not save " + msg.key
	case msg.stale:
		log.Debug("skipped stale save of %s", msg.key)
	default:
		log.Debug("persisted %s", msg.key)
	}
	return ""
}

// snapshot returns every persisted key with its current value. An empty
// history maps to "" so the stored copy is removed.
func (m AppModel) snapshot() (map[string]string, error) {
	values := map[string]string{
		store.KeyHistory: "",
		store.KeyTheme:   m.theme.Name,
	}
	if len(m.sh.historyLines) > 0 {
		data, err := m.sh.engine.MarshalHistory()
		if err != nil {
			return nil, fmt.Errorf("encoding history: %w", err)
		}
		values[store.KeyHistory] = string(data)
	}
	return values, nil
}

// flush writes the final state synchronously and supersedes any save still
// in flight when the program quits.
func (m AppModel) flush(ctx context.Context) error {
	if m.persist == nil {
		return nil
	}
	values, err := m.snapshot()
	if err != nil {
		return err
	}
	if err := m.persist.flush(ctx, values); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}
