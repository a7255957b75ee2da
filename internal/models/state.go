// Package models defines the data structures for the lightsd daemon.
// Color packing and flash semantics match the Android lights HAL wire
// format so platform bridges can pass requests through untranslated.
package models

// FlashMode selects how a light's flash request is interpreted.
type FlashMode int

const (
	FlashNone     FlashMode = 0 // steady output, no flashing
	FlashTimed    FlashMode = 1 // timed blink driven by FlashOnMS/FlashOffMS
	FlashHardware FlashMode = 2 // hardware-assisted flashing
)

func (m FlashMode) String() string {
	switch m {
	case FlashNone:
		return "none"
	case FlashTimed:
		return "timed"
	case FlashHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// LightID identifies one logical light source.
type LightID int

const (
	LightBacklight LightID = iota
	LightBattery
	LightNotifications
	LightAttention
)

// Light names used by the device-open surface and the HTTP API.
const (
	NameBacklight     = "backlight"
	NameBattery       = "battery"
	NameNotifications = "notifications"
	NameAttention     = "attention"
)

func (id LightID) String() string {
	switch id {
	case LightBacklight:
		return NameBacklight
	case LightBattery:
		return NameBattery
	case LightNotifications:
		return NameNotifications
	case LightAttention:
		return NameAttention
	default:
		return "unknown"
	}
}

// ParseLightID maps a light name to its LightID. ok is false for
// unrecognized names.
func ParseLightID(name string) (id LightID, ok bool) {
	switch name {
	case NameBacklight:
		return LightBacklight, true
	case NameBattery:
		return LightBattery, true
	case NameNotifications:
		return LightNotifications, true
	case NameAttention:
		return LightAttention, true
	default:
		return 0, false
	}
}

// LightState is one state-change request for a logical light.
// Color packs 8-bit red/green/blue into the low three bytes; the top
// (alpha) byte is carried but ignored by every rendering decision.
type LightState struct {
	Color      uint32    `json:"color"`
	FlashMode  FlashMode `json:"flash_mode"`
	FlashOnMS  int       `json:"flash_on_ms"`
	FlashOffMS int       `json:"flash_off_ms"`
}

// Validate checks request-level constraints. The arbiter itself accepts
// any state; this is only enforced at the API boundary.
func (s LightState) Validate() *AppError {
	if s.FlashOnMS < 0 {
		return &AppError{Code: "BAD_REQUEST", Message: "flash_on_ms must be non-negative", Field: "flash_on_ms", Status: 400}
	}
	if s.FlashOffMS < 0 {
		return &AppError{Code: "BAD_REQUEST", Message: "flash_off_ms must be non-negative", Field: "flash_off_ms", Status: 400}
	}
	switch s.FlashMode {
	case FlashNone, FlashTimed, FlashHardware:
		return nil
	default:
		return &AppError{Code: "BAD_REQUEST", Message: "unknown flash_mode", Field: "flash_mode", Status: 400}
	}
}

// Capabilities describes what the board's LED hardware supports.
type Capabilities struct {
	Blink     bool `json:"blink"`     // dedicated blink-enable device file present
	Attention bool `json:"attention"` // attention light is wired
}

// Info is the system information response for GET /api/info.
type Info struct {
	Hostname     string       `json:"hostname"`
	Version      string       `json:"version"`
	Board        string       `json:"board"`
	Model        string       `json:"model"`
	Capabilities Capabilities `json:"capabilities"`
	SoCTempC     *float64     `json:"soc_temp_c,omitempty"`
}

// PropUpdate is the body of PUT /api/props/{key}.
type PropUpdate struct {
	Value string `json:"value"`
}

// State is the complete daemon state returned by GET /api and published
// to subscribers on every change. Lights is keyed by light name and only
// contains lights the board supports.
type State struct {
	Board          string                `json:"board"`
	Capabilities   Capabilities          `json:"capabilities"`
	Lights         map[string]LightState `json:"lights"`
	AttentionLevel int                   `json:"attention_level"`
	Winner         string                `json:"winner"`
}

// DeepCopy returns a copy of the state sharing no mutable data.
func (s State) DeepCopy() State {
	next := s
	if s.Lights != nil {
		next.Lights = make(map[string]LightState, len(s.Lights))
		for name, ls := range s.Lights {
			next.Lights[name] = ls
		}
	}
	return next
}
