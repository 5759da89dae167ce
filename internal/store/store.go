// ABOUTME: Key/value persistence for calculator history and theme preference
// ABOUTME: FileStore writes one file per key atomically; Memory backs tests and --no-persist

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Well-known keys.
const (
	KeyHistory = "history"
	KeyTheme   = "theme"
)

// ErrInvalidKey is returned for keys that are not safe file names.
var ErrInvalidKey = errors.New("invalid store key")

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Store loads and saves string values by key.
type Store interface {
	// Load returns the value for key and whether it exists.
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Delete(key string) error
}

// FileStore keeps each key in its own file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key), nil
}

// Load reads the file for key. A missing file is not an error.
func (s *FileStore) Load(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Save writes value for key via a temp file and rename so readers never see
// a partial write.
func (s *FileStore) Save(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(value)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", key, errors.Join(werr, cerr))
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates a Memory store seeded with values.
func NewMemory(values map[string]string) *Memory {
	m := &Memory{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Load implements Store.
func (m *Memory) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Save implements Store.
func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// SaveAll writes every key concurrently and returns the first error. An empty
// value deletes the key. Keys not yet started when ctx is cancelled are skipped.
func SaveAll(ctx context.Context, s Store, values map[string]string) error {
	g, gCtx := errgroup.WithContext(ctx)
	for k, v := range values {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if v == "" {
				return s.Delete(k)
			}
			return s.Save(k, v)
		})
	}
	return g.Wait()
}
