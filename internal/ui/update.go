package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.maxWidth > 0 && m.width > m.maxWidth {
			m.width = m.maxWidth
		}
		if m.maxHeight > 0 && m.height > m.maxHeight {
			m.height = m.maxHeight
		}
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case catalogMsg:
		m.eng.Finish()
		if msg.err != nil {
			m.status = fmt.Sprintf("Catalog load failed: %v", msg.err)
			return m, nil
		}
		m.status = ""
		if first, ok := m.eng.LoadCatalog(msg.cryptos); ok {
			return m, fetchSeries(m.client, first, false)
		}
		return m, nil

	case seriesMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("History load failed for %s: %v", msg.symbol, msg.err)
		} else if m.eng.ApplySeries(msg.symbol, msg.points) {
			m.status = ""
		}
		if msg.release {
			m.eng.Finish()
		}
		return m, nil

	case reanalyzeMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Reanalysis failed for %s: %v", msg.symbol, msg.err)
			m.eng.Finish()
			return m, nil
		}
		m.eng.UpdateOne(msg.crypto)
		if msg.symbol == m.eng.SelectedSymbol() {
			// Hold the busy flag until the refreshed series is in place so
			// the new signal never renders against the old chart.
			return m, fetchSeries(m.client, msg.symbol, true)
		}
		m.eng.Finish()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch {
		case key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, keys.Blur), key.Matches(msg, keys.Select):
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.eng.SetSearch(m.search.Value())
			m.cursor = m.clampCursor(m.cursor)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Search):
		m.search.Focus()
		return m, nil

	case key.Matches(msg, keys.Up):
		m.cursor = m.clampCursor(m.cursor - 1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.cursor = m.clampCursor(m.cursor + 1)
		return m, nil

	case key.Matches(msg, keys.Select):
		filtered := m.eng.Filtered()
		if m.cursor < len(filtered) {
			sym := filtered[m.cursor].Symbol
			if sym != m.eng.SelectedSymbol() && m.eng.Select(sym) {
				return m, fetchSeries(m.client, sym, false)
			}
		}
		return m, nil

	case key.Matches(msg, keys.Reanalyze):
		if sym := m.eng.SelectedSymbol(); sym != "" && m.eng.TryBegin() {
			m.status = fmt.Sprintf("Reanalyzing %s...", sym)
			return m, fetchReanalyze(m.client, sym)
		}
		return m, nil

	case key.Matches(msg, keys.ResetZoom):
		m.eng.ResetZoom()
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if date, ok := m.dateUnderCursor(msg.X, msg.Y); ok {
			m.eng.BeginDrag(date)
		}

	case tea.MouseActionMotion:
		if m.eng.Drag().Active() {
			if date, ok := m.dateUnderCursor(msg.X, msg.Y); ok {
				m.eng.UpdateDrag(date)
			}
		}

	case tea.MouseActionRelease:
		// Release anywhere ends the gesture; a degenerate drag is a no-op.
		m.eng.CommitZoom()
	}
	return m, nil
}

// dateUnderCursor maps a terminal cell to the series date rendered at that
// chart column. Cells outside the chart rectangle resolve to nothing.
func (m Model) dateUnderCursor(x, y int) (string, bool) {
	r := m.chartRect()
	if r.w <= 0 || x < r.x || x >= r.x+r.w || y < r.y || y >= r.y+r.h {
		return "", false
	}
	date := dateAtColumn(m.eng.VisibleSeries(), r.w, x-r.x)
	return date, date != ""
}

func (m Model) clampCursor(c int) int {
	n := len(m.eng.Filtered())
	if n == 0 {
		return 0
	}
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
