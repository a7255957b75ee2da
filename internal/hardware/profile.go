package hardware

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumastack/lightsd/internal/models"
)

// Writer backends a profile can select.
const (
	BackendSysfs = "sysfs"
	BackendGPIO  = "gpio"
)

// DevicePaths lists the device files one board exposes. Blue reuses the
// LED-class node named "notification" on the reference hardware.
type DevicePaths struct {
	Backlight string `yaml:"backlight"`
	Red       string `yaml:"red"`
	Green     string `yaml:"green"`
	Blue      string `yaml:"blue"`
	Ambient   string `yaml:"ambient"`
	RedBlink  string `yaml:"red_blink"`
}

// Profile describes a board's LED wiring and what it supports.
// Populated once at boot and read-only for the process lifetime.
type Profile struct {
	Name         string              `yaml:"name"`
	Paths        DevicePaths         `yaml:"paths"`
	Capabilities models.Capabilities `yaml:"capabilities"`

	// Backend selects the writer, BackendSysfs when empty.
	Backend string `yaml:"backend,omitempty"`
	// Pins maps device paths to GPIO line names for gpio-wired boards.
	Pins map[string]string `yaml:"pins,omitempty"`
}

// DefaultProfile returns the reference lm3533 wiring.
func DefaultProfile() *Profile {
	return &Profile{
		Name: "lm3533",
		Paths: DevicePaths{
			Backlight: "/sys/class/leds/lcd-backlight/brightness",
			Red:       "/sys/class/leds/red/brightness",
			Green:     "/sys/class/leds/green/brightness",
			Blue:      "/sys/class/leds/notification/brightness",
			Ambient:   "/sys/class/leds/lm3533-light-sns/rgb_brightness",
			RedBlink:  "/sys/class/leds/red/blink",
		},
		Capabilities: models.Capabilities{Blink: true, Attention: true},
		Backend:      BackendSysfs,
	}
}

// Detect probes the reference wiring and trims capabilities to what the
// running kernel actually exposes. Boards whose LED driver lacks the
// blink attribute lose blink support.
func Detect() *Profile {
	p := DefaultProfile()
	if _, err := os.Stat(p.Paths.RedBlink); err != nil {
		p.Capabilities.Blink = false
	}
	return p
}

// LoadProfile reads a board profile from a YAML file. Fields omitted in
// the file keep their DefaultProfile values.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the wiring makes sense.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is empty")
	}
	steady := map[string]string{
		"backlight": p.Paths.Backlight,
		"red":       p.Paths.Red,
		"green":     p.Paths.Green,
		"blue":      p.Paths.Blue,
		"ambient":   p.Paths.Ambient,
	}
	for name, path := range steady {
		if path == "" {
			return fmt.Errorf("paths.%s is empty", name)
		}
	}
	if p.Capabilities.Blink && p.Paths.RedBlink == "" {
		return errors.New("blink capability requires paths.red_blink")
	}
	switch p.Backend {
	case "", BackendSysfs:
	case BackendGPIO:
		if len(p.Pins) == 0 {
			return errors.New("gpio backend requires a pin map")
		}
	default:
		return fmt.Errorf("unknown backend %q", p.Backend)
	}
	return nil
}
