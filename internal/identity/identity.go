// Package identity reports who this lightsd instance is: hostname,
// software version and the board it runs on.
package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// DefaultVersion is the fallback version string when metadata.json is not found.
const DefaultVersion = "0.6.0"

const modelPath = "/proc/device-tree/model"

// GetHostname returns the system hostname.
func GetHostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "lightsd"
	}
	return h
}

// GetVersion reads the version from ~/.config/lightsd/metadata.json.
// Falls back to DefaultVersion if the file is missing or unreadable.
func GetVersion() string {
	return GetVersionFromDir("")
}

// GetVersionFromDir reads the version from a specific config directory.
// If dir is empty, uses the default ~/.config/lightsd path.
// This variant is exported for testing.
func GetVersionFromDir(dir string) string {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultVersion
		}
		dir = filepath.Join(home, ".config", "lightsd")
	}

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return DefaultVersion
	}

	var meta map[string]interface{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return DefaultVersion
	}

	if v, ok := meta["version"].(string); ok && v != "" {
		return v
	}
	return DefaultVersion
}

// BoardModel returns the device-tree model string, for example
// "Raspberry Pi 4 Model B Rev 1.4". Returns "unknown" on hosts without
// a device tree.
func BoardModel() string {
	return BoardModelFromFile(modelPath)
}

// BoardModelFromFile reads a device-tree model string from path.
// This variant is exported for testing.
func BoardModelFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "unknown"
	}
	// Device-tree strings are NUL terminated.
	model := strings.TrimRight(string(data), "\x00\n")
	if model == "" {
		return "unknown"
	}
	return model
}
