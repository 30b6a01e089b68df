package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"liquidity-engine/internal/api"
)

// Block elements for sub-character vertical resolution (1/8 to 8/8).
var blockChars = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// column is one chart column after downsampling: the bucket's average price
// and the date of its first point, which is what a mouse event at that
// column resolves to.
type column struct {
	date  string
	price float64
}

// renderPriceChart renders the series as a filled area chart of Unicode
// block elements. baseline splits the coloring (above/below); columns whose
// date falls inside [hiLo, hiHi] are drawn in the highlight color to show
// the in-progress drag selection. Returns a block exactly height lines tall.
func renderPriceChart(points []api.PricePoint, baseline float64, width, height int, above, below, highlight lipgloss.Color, hiLo, hiHi string) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	cols := bucketColumns(points, width)

	minVal, maxVal := cols[0].price, cols[0].price
	for _, c := range cols {
		if c.price < minVal {
			minVal = c.price
		}
		if c.price > maxVal {
			maxVal = c.price
		}
	}

	totalLevels := height * 8
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
	}

	// Scale each column to 1..totalLevels so every column stays visible.
	scaled := make([]int, len(cols))
	for i, c := range cols {
		norm := (c.price - minVal) / valRange
		s := int(norm*float64(totalLevels-1)) + 1
		if s > totalLevels {
			s = totalLevels
		}
		scaled[i] = s
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		rowBottom := (height - 1 - row) * 8

		var sb strings.Builder
		for col := 0; col < len(scaled); col++ {
			fill := scaled[col] - rowBottom
			if fill <= 0 {
				sb.WriteRune(' ')
				continue
			}
			if fill > 8 {
				fill = 8
			}

			color := above
			if cols[col].price < baseline {
				color = below
			}
			if hiLo != "" && cols[col].date >= hiLo && cols[col].date <= hiHi {
				color = highlight
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(blockChars[fill])))
		}
		rows[row] = sb.String()
	}

	return strings.Join(rows, "\n")
}

// dateAtColumn maps a chart column back to the series date it represents,
// using the same bucketing as the renderer. Out-of-range columns clamp to
// the nearest edge so a drag past the chart border still resolves.
func dateAtColumn(points []api.PricePoint, width, col int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	cols := bucketColumns(points, width)
	if col < 0 {
		col = 0
	}
	if col >= len(cols) {
		col = len(cols) - 1
	}
	return cols[col].date
}

// bucketColumns downsamples points to at most width columns by averaging
// buckets. Each column keeps the date of its bucket's first point.
func bucketColumns(points []api.PricePoint, width int) []column {
	if len(points) <= width {
		out := make([]column, len(points))
		for i, p := range points {
			out[i] = column{date: p.Date, price: p.Price}
		}
		return out
	}

	out := make([]column, width)
	bucketSize := float64(len(points)) / float64(width)
	for i := 0; i < width; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(points) {
			end = len(points)
		}
		sum := 0.0
		for j := start; j < end; j++ {
			sum += points[j].Price
		}
		out[i] = column{date: points[start].Date, price: sum / float64(end-start)}
	}
	return out
}
