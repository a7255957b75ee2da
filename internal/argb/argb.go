// Package argb decodes the packed 32-bit colors carried by light
// requests. The top (alpha) byte is never significant.
package argb

// Channels splits a packed color into its 8-bit red, green and blue
// components.
func Channels(color uint32) (r, g, b int) {
	return int(color>>16) & 0xFF, int(color>>8) & 0xFF, int(color) & 0xFF
}

// Pack combines 8-bit channel values into the 24-bit RGB integer the
// ambient LED's rgb_brightness file expects.
func Pack(r, g, b int) int {
	return (r&0xFF)<<16 | (g&0xFF)<<8 | b&0xFF
}

// IsLit reports whether a color drives any LED channel.
func IsLit(color uint32) bool {
	return color&0x00FFFFFF != 0
}

// Brightness reduces a color to a single perceptual brightness in
// [0,255] using integer luma weights. The weights and shift are
// calibration-sensitive; keep them exact.
func Brightness(color uint32) int {
	r, g, b := Channels(color)
	return (77*r + 150*g + 29*b) >> 8
}
