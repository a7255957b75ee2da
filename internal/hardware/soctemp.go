package hardware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const socTempPath = "/sys/class/thermal/thermal_zone0/temp"

// SoCTemp reads the SoC temperature in Celsius from the first thermal
// zone. The file is absent on some boards and in development; callers
// treat an error as "unknown", not a fault.
func SoCTemp() (float64, error) {
	return socTempFromFile(socTempPath)
}

func socTempFromFile(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("soctemp: read %s: %w", path, err)
	}
	millideg, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("soctemp: parse: %w", err)
	}
	return float64(millideg) / 1000.0, nil
}
