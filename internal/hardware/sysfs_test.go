package hardware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/lumastack/lightsd/internal/hardware"
)

// newDeviceFile creates a fake sysfs attribute in a temp dir.
func newDeviceFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("0"), 0644); err != nil {
		t.Fatalf("create device file: %v", err)
	}
	return path
}

func TestSysfsWriteInt(t *testing.T) {
	path := newDeviceFile(t, "brightness")
	w := hardware.NewSysfs()

	if err := w.WriteInt(context.Background(), path, 142); err != nil {
		t.Fatalf("WriteInt: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "142\n" {
		t.Errorf("device file = %q, want %q", got, "142\n")
	}
}

func TestSysfsWriteIntZero(t *testing.T) {
	path := newDeviceFile(t, "brightness")
	w := hardware.NewSysfs()

	if err := w.WriteInt(context.Background(), path, 0); err != nil {
		t.Fatalf("WriteInt: %v", err)
	}
	data, _ := os.ReadFile(path)
	if got := string(data); got != "0\n" {
		t.Errorf("device file = %q, want %q", got, "0\n")
	}
}

func TestSysfsMissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	w := hardware.NewSysfs()

	err := w.WriteInt(context.Background(), path, 1)
	if err == nil {
		t.Fatal("WriteInt on missing path succeeded")
	}

	var werr *hardware.WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("error type = %T, want *WriteError", err)
	}
	if werr.Op != "open" {
		t.Errorf("Op = %q, want open", werr.Op)
	}
	if werr.Errno != unix.ENOENT {
		t.Errorf("Errno = %v, want ENOENT", werr.Errno)
	}
	if werr.Code() != -int(unix.ENOENT) {
		t.Errorf("Code() = %d, want %d", werr.Code(), -int(unix.ENOENT))
	}
}

func TestSysfsOpenWarnedOncePerPath(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	w := hardware.NewSysfs()
	missingA := filepath.Join(t.TempDir(), "a")
	missingB := filepath.Join(t.TempDir(), "b")

	for i := 0; i < 3; i++ {
		_ = w.WriteInt(context.Background(), missingA, i)
	}
	_ = w.WriteInt(context.Background(), missingB, 1)

	warns := strings.Count(buf.String(), "failed to open device")
	if warns != 2 {
		t.Errorf("open warnings = %d, want 2 (one per path); log:\n%s", warns, buf.String())
	}
}

func TestSysfsSequentialWrites(t *testing.T) {
	path := newDeviceFile(t, "rgb_brightness")
	w := hardware.NewSysfs()

	for _, v := range []int{16711680, 255, 0} {
		if err := w.WriteInt(context.Background(), path, v); err != nil {
			t.Fatalf("WriteInt(%d): %v", v, err)
		}
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "0\n") {
		t.Errorf("device file after final write = %q, want prefix %q", data, "0\n")
	}
}
