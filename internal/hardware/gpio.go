//go:build linux

package hardware

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/lumastack/lightsd/internal/metrics"
)

// GPIO drives indicator LEDs wired to bare GPIO lines instead of an
// LED-class kernel driver. Each device path from the board profile maps
// to a named line; any nonzero value drives the line high.
type GPIO struct {
	mu   sync.Mutex
	pins map[string]gpio.PinIO
}

// NewGPIO resolves the profile's pin map. Values are line names
// understood by periph's registry ("GPIO17", "LED_R", ...).
func NewGPIO(pins map[string]string) (*GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init: %w", err)
	}
	resolved := make(map[string]gpio.PinIO, len(pins))
	for path, name := range pins {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("gpio: pin %q not found", name)
		}
		resolved[path] = pin
	}
	return &GPIO{pins: resolved}, nil
}

func (g *GPIO) Name() string { return "gpio" }

func (g *GPIO) WriteInt(ctx context.Context, path string, value int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pin, ok := g.pins[path]
	if !ok {
		// No line wired for this device; report it like a missing node.
		metrics.IncHWWrite(path, metrics.ResultOpenError)
		return &WriteError{Op: "open", Path: path, Errno: unix.ENOENT}
	}
	if err := pin.Out(gpio.Level(value > 0)); err != nil {
		metrics.IncHWWrite(path, metrics.ResultWriteError)
		return fmt.Errorf("gpio: set %s: %w", path, err)
	}
	metrics.IncHWWrite(path, metrics.ResultOK)
	return nil
}
