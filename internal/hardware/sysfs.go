package hardware

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/time/rate"

	"github.com/lumastack/lightsd/internal/metrics"
)

const maxWritesPerSec = 200

// Sysfs writes through LED-class device files. A single instance is
// shared by all handlers; the rate limit keeps a misbehaving caller
// from hammering the kernel attributes.
type Sysfs struct {
	limiter *rate.Limiter

	mu     sync.Mutex
	warned map[string]bool // open failures already logged, by path
}

// NewSysfs creates the real device writer.
func NewSysfs() *Sysfs {
	return &Sysfs{
		limiter: rate.NewLimiter(rate.Limit(maxWritesPerSec), 8),
		warned:  make(map[string]bool),
	}
}

func (s *Sysfs) Name() string { return "sysfs" }

// WriteInt writes value to path. Open failures are logged once per path
// for the process lifetime so a permanently missing node cannot flood
// the log; write failures are logged every time.
func (s *Sysfs) WriteInt(ctx context.Context, path string, value int) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		werr := &WriteError{Op: "open", Path: path, Errno: errnoOf(err)}
		s.warnOpenOnce(path, werr)
		metrics.IncHWWrite(path, metrics.ResultOpenError)
		return werr
	}
	defer unix.Close(fd)

	buf := strconv.AppendInt(nil, int64(value), 10)
	buf = append(buf, '\n')
	if _, err := unix.Write(fd, buf); err != nil {
		werr := &WriteError{Op: "write", Path: path, Errno: errnoOf(err)}
		slog.Error("hw: write failed", "path", path, "value", value, "err", werr)
		metrics.IncHWWrite(path, metrics.ResultWriteError)
		return werr
	}

	metrics.IncHWWrite(path, metrics.ResultOK)
	return nil
}

func (s *Sysfs) warnOpenOnce(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.warned[path] {
		return
	}
	s.warned[path] = true
	slog.Warn("hw: failed to open device", "path", path, "err", err)
}

func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return unix.EIO
}
