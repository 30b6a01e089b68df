package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"liquidity-engine/internal/api"
	"liquidity-engine/internal/engine"
	"liquidity-engine/internal/theme"
)

// Fixed vertical layout so mouse coordinates map onto chart columns without
// re-measuring rendered blocks.
const (
	headerLines = 8  // 6 figlet rows + blank + status line
	detailLines = 9  // selected-asset card above the chart
	leftWidth   = 30 // selector panel
	panelGap    = 2
	chartHeight = 12
)

type rect struct {
	x, y, w, h int
}

// chartRect is the terminal rectangle the price chart occupies. Update uses
// it to translate mouse events into series dates.
func (m Model) chartRect() rect {
	x := leftWidth + panelGap
	w := m.width - x - 1
	if w < 0 {
		w = 0
	}
	return rect{x: x, y: headerLines + detailLines, w: w, h: chartHeight}
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewSelector(),
		strings.Repeat(" ", panelGap),
		m.viewDetail(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body)
}

func (m Model) viewHeader() string {
	t := theme.Default

	title := theme.GradientText(renderFiglet("LIQUIDITY"), t.Primary, t.Accent)

	status := m.status
	style := lipgloss.NewStyle().Foreground(t.Muted)
	if status == "" {
		status = "/ search · ↑↓ navigate · enter select · drag chart to zoom · z reset · r reanalyze · q quit"
	} else if m.eng.Busy() {
		style = style.Foreground(t.Warning)
	} else {
		style = style.Foreground(t.Error)
	}

	return padToHeight(title+"\n\n"+style.Render(status), headerLines)
}

// viewSelector is the searchable asset list. It renders from the filtered
// catalog, so search narrows it live.
func (m Model) viewSelector() string {
	t := theme.Default
	panel := lipgloss.NewStyle().Width(leftWidth)

	lines := []string{m.search.View(), ""}

	filtered := m.eng.Filtered()
	if len(filtered) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("No matching assets"))
		return panel.Render(strings.Join(lines, "\n"))
	}

	maxRows := m.height - headerLines - 3
	for i, c := range filtered {
		if i >= maxRows {
			break
		}
		cls := engine.Classify(c.Signal)
		row := fmt.Sprintf("%s %-10s %5.1f", cls.Icon, c.Symbol, c.FinalScore)

		style := lipgloss.NewStyle().Foreground(signalColor(cls, t))
		switch {
		case i == m.cursor && c.Symbol == m.eng.SelectedSymbol():
			style = style.Background(t.Overlay).Bold(true)
		case i == m.cursor:
			style = style.Background(t.Overlay)
		case c.Symbol == m.eng.SelectedSymbol():
			style = style.Bold(true)
		}
		lines = append(lines, style.Render(row))
	}

	return panel.Render(strings.Join(lines, "\n"))
}

// viewDetail is the right column: selected-asset card, zoomable chart and
// the execution footer.
func (m Model) viewDetail() string {
	t := theme.Default
	r := m.chartRect()

	sel := m.eng.Selected()
	if sel == nil {
		return padToHeight(lipgloss.NewStyle().Foreground(t.Muted).Render("Waiting for catalog..."), detailLines)
	}

	card := padToHeight(m.viewCard(*sel), detailLines)
	chart := m.viewChart(r)
	footer := m.viewFooter(*sel)

	return lipgloss.JoinVertical(lipgloss.Left, card, chart, footer)
}

func (m Model) viewCard(sel api.Crypto) string {
	t := theme.Default
	cls := engine.Classify(sel.Signal)
	sigStyle := lipgloss.NewStyle().Foreground(signalColor(cls, t)).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.Muted)
	value := lipgloss.NewStyle().Foreground(t.Text)

	lines := []string{
		sigStyle.Render(fmt.Sprintf("%s  %s  %s", cls.Icon, sel.Symbol, sel.Signal)),
		"",
		label.Render("Price        ") + value.Render(fmt.Sprintf("$%.4f", sel.CurrentPrice)),
		label.Render("Final score  ") + value.Render(fmt.Sprintf("%.1f / 100", sel.FinalScore)),
		label.Render("Weighted avg ") + value.Render(fmt.Sprintf("$%.4f", sel.WeightedAvg)),
	}

	if sel.ValueCoefficient != nil {
		coefStyle := value
		if *sel.ValueCoefficient > 0 {
			coefStyle = coefStyle.Foreground(t.Error) // above the decayed mean
		} else if *sel.ValueCoefficient < 0 {
			coefStyle = coefStyle.Foreground(t.Success)
		}
		lines = append(lines, label.Render("Value coef   ")+coefStyle.Render(fmt.Sprintf("%+.3f σ", *sel.ValueCoefficient)))
	}

	if c := sel.Components; c != nil {
		metrics := label.Render("RSI ") + value.Render(fmt.Sprintf("%.1f", c.TechnicalRSI))
		if c.VolatilityPct != nil {
			metrics += label.Render("   Volatility ") + value.Render(fmt.Sprintf("%.1f%%", *c.VolatilityPct))
		}
		if c.StabilityScore != nil {
			metrics += label.Render("   Stability ") + value.Render(fmt.Sprintf("%.1f", *c.StabilityScore))
		}
		lines = append(lines, metrics)
		if c.AISentiment != "" {
			ai := engine.Classify(c.AISentiment)
			lines = append(lines, label.Render("AI sentiment ")+
				lipgloss.NewStyle().Foreground(signalColor(ai, t)).Render(fmt.Sprintf("%s ×%.1f", c.AISentiment, c.AIMultiplier)))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewChart(r rect) string {
	t := theme.Default

	visible := m.eng.VisibleSeries()
	if len(visible) == 0 {
		return padToHeight(lipgloss.NewStyle().Foreground(t.Muted).Render("  No price history"), chartHeight)
	}

	baseline := 0.0
	if sel := m.eng.Selected(); sel != nil {
		baseline = sel.WeightedAvg
	}

	hiLo, hiHi := "", ""
	if d := m.eng.Drag(); d.Active() && d.Cursor != "" {
		hiLo, hiHi = d.Anchor, d.Cursor
		if hiLo > hiHi {
			hiLo, hiHi = hiHi, hiLo
		}
	}

	return renderPriceChart(visible, baseline, r.w, r.h, t.Success, t.Error, t.Info, hiLo, hiHi)
}

func (m Model) viewFooter(sel api.Crypto) string {
	t := theme.Default
	label := lipgloss.NewStyle().Foreground(t.Muted)
	value := lipgloss.NewStyle().Foreground(t.Subtext)

	visible := m.eng.VisibleSeries()
	window := "full history"
	if v := m.eng.Viewport(); !v.Full() && len(visible) > 0 {
		window = fmt.Sprintf("%s → %s", visible[0].Date, visible[len(visible)-1].Date)
	}

	addr := engine.TokenAddress(sel.Symbol)
	transfer := "not transferable"
	if addr != engine.ZeroAddress {
		transfer = addr
	}

	lines := []string{
		label.Render("Window   ") + value.Render(window),
		label.Render("Contract ") + value.Render(transfer),
	}

	if c := sel.Components; c != nil {
		wrapWidth := m.width - leftWidth - panelGap - 10
		if wrapWidth < 20 {
			wrapWidth = 20
		}
		if c.AIAnalysis != "" {
			blurb := lipgloss.NewStyle().Width(wrapWidth).Foreground(t.Subtext).Render(c.AIAnalysis)
			lines = append(lines, "", label.Render("Analysis ")+strings.TrimLeft(blurb, " "))
		}
		if len(c.AILinks) > 0 {
			links := lipgloss.NewStyle().Foreground(t.Info).Render(strings.Join(c.AILinks, "  "))
			lines = append(lines, label.Render("News     ")+links)
		}
	}

	return strings.Join(lines, "\n")
}

func signalColor(cls engine.Classification, t theme.Theme) lipgloss.Color {
	switch cls.Category {
	case engine.Positive:
		return t.Success
	case engine.Negative:
		return t.Error
	default:
		return t.Muted
	}
}

func renderFiglet(text string) string {
	fig := figure.NewFigure(text, "", false)
	return strings.Join(fig.Slicify(), "\n")
}

// padToHeight pads or truncates a block to exactly h lines.
func padToHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
