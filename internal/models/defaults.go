package models

// DefaultState returns the boot state for a board: every supported light
// present and dark, notification winning the shared LED by fallback.
func DefaultState(board string, caps Capabilities) State {
	lights := map[string]LightState{
		NameBacklight:     {},
		NameBattery:       {},
		NameNotifications: {},
	}
	if caps.Attention {
		lights[NameAttention] = LightState{}
	}
	return State{
		Board:        board,
		Capabilities: caps,
		Lights:       lights,
		Winner:       NameNotifications,
	}
}

// SupportedLights lists the light names a board with the given
// capabilities accepts, in the order the API reports them.
func SupportedLights(caps Capabilities) []string {
	names := []string{NameBacklight, NameBattery, NameNotifications}
	if caps.Attention {
		names = append(names, NameAttention)
	}
	return names
}
