// Package props reads the system property file that configures light
// behavior at runtime. It is the plain-Linux stand-in for an Android
// property space: a key=value file, reloaded whenever it changes on
// disk, queried fresh on every arbitration pass.
package props

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// KeyBarLED selects how the shared ambient/bar LED tracks the RGB color.
const KeyBarLED = "sys.lights.barled"

// Tri-state values returned by Tristate.
const (
	Off  = 0
	On   = 1
	Only = 2
)

// Store holds the parsed property file.
type Store struct {
	mu      sync.RWMutex
	path    string
	vals    map[string]string
	watcher *fsnotify.Watcher
}

// Open loads the property file at path and starts watching it for
// changes. An empty path yields a static in-memory store (tests, mock
// mode). A missing file is not an error; it reads as empty.
func Open(path string) (*Store, error) {
	s := &Store{path: path, vals: make(map[string]string)}
	if path == "" {
		return s, nil
	}

	if err := s.Reload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("props: could not create fsnotify watcher", "err", err)
		return s, nil
	}
	s.watcher = watcher

	// Watch the directory, not the file, so atomic rename-over saves
	// are still observed.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		slog.Warn("props: could not watch property dir", "path", path, "err", err)
	}

	go s.watchLoop()
	return s, nil
}

// Reload re-reads the property file.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.mu.Lock()
			s.vals = make(map[string]string)
			s.mu.Unlock()
			return nil
		}
		return err
	}

	vals := parse(data)
	s.mu.Lock()
	s.vals = vals
	s.mu.Unlock()
	slog.Debug("props: reloaded", "path", s.path, "count", len(vals))
	return nil
}

func parse(data []byte) map[string]string {
	vals := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		vals[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return vals
}

// Get returns the raw value for key, or "" when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals[key]
}

// All returns a copy of every property.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vals))
	for k, v := range s.vals {
		out[k] = v
	}
	return out
}

// Set updates a property and persists the file atomically (write temp,
// rename over). On a static store the update is in-memory only.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.vals[key] = value
	data := s.renderLocked()
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	return s.writeAtomic(data)
}

// renderLocked serializes the properties with sorted keys so rewrites
// are deterministic. Caller holds mu.
func (s *Store) renderLocked() []byte {
	keys := make([]string, 0, len(s.vals))
	for k := range s.vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.vals[k])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (s *Store) writeAtomic(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// Tristate normalizes the value of key into {Off, On, Only} using the
// historic lights HAL parsing rules. Unrecognized non-empty values fail
// open to On.
func (s *Store) Tristate(key string, def int) int {
	return ParseTristate(s.Get(key), def)
}

// ParseTristate maps a raw property value to {0, 1, 2}:
// empty -> def; single character '0'/'n' -> 0, '1'/'y' -> 1, '2'/'o' -> 2,
// anything else -> 1; longer values match case-sensitively against
// no/false/off/disable -> 0, yes/true/on/enable -> 1, only -> 2,
// anything else -> 1.
func ParseTristate(v string, def int) int {
	if v == "" {
		return def
	}
	if len(v) == 1 {
		switch v[0] {
		case '0', 'n':
			return Off
		case '1', 'y':
			return On
		case '2', 'o':
			return Only
		default:
			return On
		}
	}
	switch v {
	case "no", "false", "off", "disable":
		return Off
	case "yes", "true", "on", "enable":
		return On
	case "only":
		return Only
	default:
		return On
	}
}

// Close stops the file watcher.
func (s *Store) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
}

func (s *Store) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name == s.path && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				if err := s.Reload(); err != nil {
					slog.Warn("props: failed to reload", "path", s.path, "err", err)
				}
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("props: watcher error", "err", err)
		}
	}
}
