package props_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumastack/lightsd/internal/props"
)

func TestParseTristate(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		// empty falls back to the default
		{"", 1, 1},
		{"", 0, 0},
		{"", 2, 2},
		// single characters
		{"0", 1, 0},
		{"n", 1, 0},
		{"1", 0, 1},
		{"y", 0, 1},
		{"2", 1, 2},
		{"o", 1, 2},
		{"x", 0, 1}, // unrecognized single char fails open
		{"7", 0, 1},
		// words, case-sensitive
		{"no", 1, 0},
		{"false", 1, 0},
		{"off", 1, 0},
		{"disable", 1, 0},
		{"yes", 0, 1},
		{"true", 0, 1},
		{"on", 0, 1},
		{"enable", 0, 1},
		{"only", 1, 2},
		// case mismatch and unknown words fail open to on
		{"On", 0, 1},
		{"NO", 0, 1},
		{"Only", 0, 1},
		{"disabled", 0, 1},
		{"maybe", 0, 1},
	}
	for _, tc := range tests {
		if got := props.ParseTristate(tc.in, tc.def); got != tc.want {
			t.Errorf("ParseTristate(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func writePropFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "props")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write prop file: %v", err)
	}
	return path
}

func openStore(t *testing.T, path string) *props.Store {
	t.Helper()
	s, err := props.Open(path)
	if err != nil {
		t.Fatalf("props.Open(%q): %v", path, err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestStoreFile(t *testing.T) {
	path := writePropFile(t, t.TempDir(), `
# lightsd properties
sys.lights.barled = only
persist.vendor.radio = whatever

broken line without equals
`)
	s := openStore(t, path)

	if got := s.Get(props.KeyBarLED); got != "only" {
		t.Errorf("Get(barled) = %q, want %q", got, "only")
	}
	if got := s.Tristate(props.KeyBarLED, 1); got != props.Only {
		t.Errorf("Tristate(barled) = %d, want %d", got, props.Only)
	}
	if got := s.Get("persist.vendor.radio"); got != "whatever" {
		t.Errorf("Get(radio) = %q, want %q", got, "whatever")
	}
	if got := s.Get("missing.key"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if got := s.Tristate("missing.key", 1); got != props.On {
		t.Errorf("Tristate(missing, 1) = %d, want 1", got)
	}
	if got := len(s.All()); got != 2 {
		t.Errorf("All() has %d entries, want 2", got)
	}
}

func TestStoreMissingFile(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "does-not-exist"))

	if got := s.Get(props.KeyBarLED); got != "" {
		t.Errorf("Get on missing file = %q, want empty", got)
	}
	if got := s.Tristate(props.KeyBarLED, 2); got != props.Only {
		t.Errorf("Tristate default on missing file = %d, want 2", got)
	}
}

func TestStoreStatic(t *testing.T) {
	s := openStore(t, "")

	if got := s.Get("anything"); got != "" {
		t.Errorf("static Get = %q, want empty", got)
	}
	if err := s.Set(props.KeyBarLED, "0"); err != nil {
		t.Fatalf("static Set: %v", err)
	}
	if got := s.Tristate(props.KeyBarLED, 1); got != props.Off {
		t.Errorf("Tristate after static Set = %d, want 0", got)
	}
}

func TestStoreReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writePropFile(t, dir, "sys.lights.barled=1\n")
	s := openStore(t, path)

	if got := s.Tristate(props.KeyBarLED, 1); got != props.On {
		t.Fatalf("initial Tristate = %d, want 1", got)
	}

	writePropFile(t, dir, "sys.lights.barled=only\n")

	// The watcher reloads asynchronously.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.Tristate(props.KeyBarLED, 1) == props.Only {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("store did not pick up file change, Tristate = %d", s.Tristate(props.KeyBarLED, 1))
}

func TestStoreSetPersists(t *testing.T) {
	dir := t.TempDir()
	path := writePropFile(t, dir, "a=1\n")
	s := openStore(t, path)

	if err := s.Set(props.KeyBarLED, "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh store must see the written value.
	s2 := openStore(t, path)
	if got := s2.Get(props.KeyBarLED); got != "2" {
		t.Errorf("persisted value = %q, want %q", got, "2")
	}
	if got := s2.Get("a"); got != "1" {
		t.Errorf("pre-existing key lost on Set, a = %q", got)
	}
}
