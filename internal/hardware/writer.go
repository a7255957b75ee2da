// Package hardware drives the LED device files behind the lights daemon.
// Every rendering decision ends here as an integer written to a path.
package hardware

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// Writer writes integer values to LED device files. Implementations
// must be safe for concurrent use.
type Writer interface {
	// WriteInt writes value to the device file at path, formatted as
	// decimal ASCII followed by a newline.
	WriteInt(ctx context.Context, path string, value int) error
	// Name identifies the backend in logs and /api/info.
	Name() string
}

// WriteError is returned when a device file operation fails. It keeps
// the underlying errno so callers that speak the legacy HAL's
// negated-errno convention can recover it.
type WriteError struct {
	Op    string // "open" or "write"
	Path  string
	Errno unix.Errno
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("hw: %s %s: %v", e.Op, e.Path, e.Errno)
}

func (e *WriteError) Unwrap() error { return e.Errno }

// Code returns the negated errno, matching what the legacy HAL surface
// reported for device failures.
func (e *WriteError) Code() int { return -int(e.Errno) }
