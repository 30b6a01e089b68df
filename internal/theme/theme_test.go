package theme

import (
	"strings"
	"testing"
)

func TestGradientTextKeepsShape(t *testing.T) {
	in := "████ ██\n██  ███\n"
	out := GradientText(in, Default.Primary, Default.Accent)

	if got, want := len(strings.Split(out, "\n")), len(strings.Split(in, "\n")); got != want {
		t.Fatalf("line count changed: got %d, want %d", got, want)
	}
}

func TestGradientTextEmpty(t *testing.T) {
	if out := GradientText("", Default.Primary, Default.Accent); out != "" {
		t.Fatalf("empty input rendered %q", out)
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"#3B82F6", 0x3B, 0x82, 0xF6},
		{"bogus", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hexToRGB(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
