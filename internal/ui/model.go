package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"liquidity-engine/internal/api"
	"liquidity-engine/internal/engine"
)

type Model struct {
	client *api.Client
	apiURL string

	eng *engine.Engine

	// UI state
	width     int
	height    int
	maxWidth  int
	maxHeight int
	ready     bool
	status    string
	cursor    int

	// Components
	search textinput.Model
}

// Messages

type catalogMsg struct {
	cryptos []api.Crypto
	err     error
}

// seriesMsg carries the symbol the fetch was issued for so stale results
// can be rejected against the current selection. release marks the loads
// that own the busy flag (the reanalysis follow-up).
type seriesMsg struct {
	symbol  string
	points  []api.PricePoint
	err     error
	release bool
}

type reanalyzeMsg struct {
	symbol string
	crypto api.Crypto
	err    error
}

func NewModel(client *api.Client, apiURL string, maxWidth, maxHeight int) Model {
	search := textinput.New()
	search.Placeholder = "Search symbol..."
	search.CharLimit = 16
	search.Width = 20

	return Model{
		client:    client,
		apiURL:    apiURL,
		eng:       engine.New(),
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		search:    search,
		status:    "Loading market data...",
	}
}

func (m Model) Init() tea.Cmd {
	m.eng.TryBegin()
	return fetchCatalog(m.client)
}

// Commands

func fetchCatalog(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		cryptos, err := c.Cryptos()
		return catalogMsg{cryptos, err}
	}
}

func fetchSeries(c *api.Client, symbol string, release bool) tea.Cmd {
	return func() tea.Msg {
		points, err := c.History(symbol)
		return seriesMsg{symbol: symbol, points: points, err: err, release: release}
	}
}

func fetchReanalyze(c *api.Client, symbol string) tea.Cmd {
	return func() tea.Msg {
		crypto, err := c.Analyze(symbol)
		return reanalyzeMsg{symbol: symbol, crypto: crypto, err: err}
	}
}
