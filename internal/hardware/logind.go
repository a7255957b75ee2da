package hardware

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/lumastack/lightsd/internal/metrics"
)

// LogindBacklight routes backlight writes through systemd-logind's
// SetBrightness call so the daemon can run without write access to the
// sysfs node. Writes to every other path fall through to the wrapped
// Writer.
type LogindBacklight struct {
	inner     Writer
	conn      *dbus.Conn
	backlight string // intercepted device path
	subsystem string // sysfs class, "leds" or "backlight"
	device    string // device name within the class
}

// NewLogindBacklight connects to the system bus and intercepts writes
// to backlightPath, which must be a sysfs class attribute such as
// /sys/class/leds/lcd-backlight/brightness.
func NewLogindBacklight(inner Writer, backlightPath string) (*LogindBacklight, error) {
	subsystem, device, err := splitClassPath(backlightPath)
	if err != nil {
		return nil, err
	}
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("logind: system bus: %w", err)
	}
	return &LogindBacklight{
		inner:     inner,
		conn:      conn,
		backlight: backlightPath,
		subsystem: subsystem,
		device:    device,
	}, nil
}

func (l *LogindBacklight) Name() string { return l.inner.Name() + "+logind" }

func (l *LogindBacklight) WriteInt(ctx context.Context, path string, value int) error {
	if path != l.backlight {
		return l.inner.WriteInt(ctx, path, value)
	}

	if value < 0 {
		value = 0
	}
	obj := l.conn.Object("org.freedesktop.login1", "/org/freedesktop/login1/session/self")
	call := obj.CallWithContext(ctx, "org.freedesktop.login1.Session.SetBrightness", 0,
		l.subsystem, l.device, uint32(value))
	if call.Err != nil {
		metrics.IncHWWrite(path, metrics.ResultWriteError)
		return fmt.Errorf("logind: set brightness on %s/%s: %w", l.subsystem, l.device, call.Err)
	}
	metrics.IncHWWrite(path, metrics.ResultOK)
	return nil
}

// splitClassPath extracts the subsystem and device name from a sysfs
// class attribute path like /sys/class/leds/lcd-backlight/brightness.
func splitClassPath(path string) (subsystem, device string, err error) {
	rest, ok := strings.CutPrefix(path, "/sys/class/")
	if !ok {
		return "", "", fmt.Errorf("logind: %s is not a sysfs class path", path)
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("logind: %s is not a class attribute path", path)
	}
	return parts[0], parts[1], nil
}
