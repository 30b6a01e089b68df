// Package theme holds the dashboard's semantic color palette.
package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names the palette roles the views draw from.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// Default is the dashboard's dark palette. Success/Error double as the
// buy/sell signal colors.
var Default = Theme{
	Base:    lipgloss.Color("#0A0A0A"),
	Surface: lipgloss.Color("#111111"),
	Overlay: lipgloss.Color("#1A1A1A"),
	Border:  lipgloss.Color("#222222"),
	Muted:   lipgloss.Color("#888888"),
	Text:    lipgloss.Color("#E5E5E5"),
	Subtext: lipgloss.Color("#A3A3A3"),
	Primary: lipgloss.Color("#3B82F6"),
	Accent:  lipgloss.Color("#8B5CF6"),
	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#06B6D4"),
}

// GradientText colors a text block with a horizontal gradient. One style is
// computed per column and shared by every line, so the figlet header pays
// the interpolation cost once per column, not once per rune.
func GradientText(text string, from, to lipgloss.Color) string {
	lines := strings.Split(text, "\n")

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		return text
	}
	styles := gradientStyles(from, to, width)

	out := make([]string, len(lines))
	for li, line := range lines {
		var sb strings.Builder
		for i, r := range []rune(line) {
			sb.WriteString(styles[i].Render(string(r)))
		}
		out[li] = sb.String()
	}
	return strings.Join(out, "\n")
}

// gradientStyles interpolates n foreground styles between two hex colors.
func gradientStyles(from, to lipgloss.Color, n int) []lipgloss.Style {
	fr, fg, fb := hexToRGB(string(from))
	tr, tg, tb := hexToRGB(string(to))

	styles := make([]lipgloss.Style, n)
	for i := range styles {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := lerpChannel(fr, tr, t)
		g := lerpChannel(fg, tg, t)
		b := lerpChannel(fb, tb, t)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	}
	return styles
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(math.Round(float64(from) + t*float64(int(to)-int(from))))
}

func hexToRGB(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
