package argb_test

import (
	"testing"

	"github.com/lumastack/lightsd/internal/argb"
)

func TestChannels(t *testing.T) {
	tests := []struct {
		color   uint32
		r, g, b int
	}{
		{0x00000000, 0, 0, 0},
		{0x00FF0000, 255, 0, 0},
		{0x0000FF00, 0, 255, 0},
		{0x000000FF, 0, 0, 255},
		{0x00123456, 0x12, 0x34, 0x56},
		{0xFF123456, 0x12, 0x34, 0x56}, // alpha ignored
	}
	for _, tc := range tests {
		r, g, b := argb.Channels(tc.color)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Channels(0x%08X) = (%d,%d,%d), want (%d,%d,%d)",
				tc.color, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    int
	}{
		{0, 0, 0, 0x000000},
		{255, 0, 0, 0xFF0000},
		{0, 255, 0, 0x00FF00},
		{0, 0, 255, 0x0000FF},
		{0x12, 0x34, 0x56, 0x123456},
		{255, 255, 255, 0xFFFFFF},
	}
	for _, tc := range tests {
		if got := argb.Pack(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("Pack(%d,%d,%d) = 0x%06X, want 0x%06X", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestChannelsPackRoundTrip(t *testing.T) {
	for _, color := range []uint32{0, 0x00FF0000, 0x00ABCDEF, 0x00FFFFFF} {
		r, g, b := argb.Channels(color)
		if got := argb.Pack(r, g, b); uint32(got) != color&0x00FFFFFF {
			t.Errorf("Pack(Channels(0x%08X)) = 0x%06X", color, got)
		}
	}
}

func TestIsLit(t *testing.T) {
	tests := []struct {
		color uint32
		lit   bool
	}{
		{0x00000000, false},
		{0xFF000000, false}, // alpha only
		{0x00000001, true},
		{0x00010000, true},
		{0xFFFFFFFF, true},
	}
	for _, tc := range tests {
		if got := argb.IsLit(tc.color); got != tc.lit {
			t.Errorf("IsLit(0x%08X) = %v, want %v", tc.color, got, tc.lit)
		}
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		color uint32
		want  int
	}{
		{0x00000000, 0},
		{0x00FFFFFF, 255},
		{0x00FF0000, 76},  // 77*255 >> 8
		{0x0000FF00, 149}, // 150*255 >> 8
		{0x000000FF, 28},  // 29*255 >> 8
		{0x00808080, 128},
		{0xFF000000, 0}, // alpha contributes nothing
	}
	for _, tc := range tests {
		if got := argb.Brightness(tc.color); got != tc.want {
			t.Errorf("Brightness(0x%08X) = %d, want %d", tc.color, got, tc.want)
		}
	}
}

func TestBrightnessBounded(t *testing.T) {
	for _, color := range []uint32{0, 0x00FFFFFF, 0x00FF00FF, 0x0000FFFF, 0x00123456, 0xFFFFFFFF} {
		got := argb.Brightness(color)
		if got < 0 || got > 255 {
			t.Errorf("Brightness(0x%08X) = %d, out of [0,255]", color, got)
		}
	}
}
