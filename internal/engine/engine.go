// Package engine holds the dashboard state: the analyzed asset catalog, the
// current selection, the selected asset's price series, the chart zoom
// viewport with its drag gesture, the search filter and the shared busy
// flag. It is a single-owner container mutated only from the UI event loop;
// it performs no I/O of its own. Fetch results are applied through the
// Load/Apply methods, which carry the request's target symbol so stale
// responses can be rejected.
package engine

import "liquidity-engine/internal/api"

// Engine is the state container behind the dashboard. All reads for
// rendering and all user commands go through it.
type Engine struct {
	catalog  []api.Crypto
	selected string // symbol; empty before the first catalog load
	series   []api.PricePoint
	viewport Viewport
	drag     Drag
	busy     bool
	search   string
}

func New() *Engine {
	return &Engine{}
}

// LoadCatalog replaces the catalog wholesale. If the catalog is non-empty
// and nothing is selected yet, the first asset is selected and its symbol is
// returned so the caller can issue the series load for it.
func (e *Engine) LoadCatalog(cryptos []api.Crypto) (string, bool) {
	e.catalog = cryptos
	if e.selected == "" && len(cryptos) > 0 {
		e.selected = cryptos[0].Symbol
		return e.selected, true
	}
	return "", false
}

// Select changes the selection to symbol. Unknown symbols are a silent
// no-op. Returns true when the selection changed and a series load should be
// issued for it. Symbol uniqueness is trusted; on duplicates the first match
// wins.
func (e *Engine) Select(symbol string) bool {
	for _, c := range e.catalog {
		if c.Symbol == symbol {
			e.selected = symbol
			return true
		}
	}
	return false
}

// UpdateOne replaces the catalog entry matching crypto.Symbol, leaving order
// and all other entries untouched. Unknown symbols are ignored.
func (e *Engine) UpdateOne(crypto api.Crypto) {
	for i := range e.catalog {
		if e.catalog[i].Symbol == crypto.Symbol {
			e.catalog[i] = crypto
			return
		}
	}
}

// ApplySeries installs a fetched price series. The result is discarded when
// its symbol no longer matches the current selection (a stale response from
// a superseded fetch). Accepting a series resets the viewport to full extent
// and clears any in-progress drag.
func (e *Engine) ApplySeries(symbol string, points []api.PricePoint) bool {
	if symbol != e.selected {
		return false
	}
	e.series = points
	e.viewport = Viewport{}
	e.drag = Drag{}
	return true
}

// SetSearch updates the search term used by Filtered.
func (e *Engine) SetSearch(term string) {
	e.search = term
}

// Filtered derives the visible subset of the catalog for the current search
// term. Both the selector list and the market overview render from it.
func (e *Engine) Filtered() []api.Crypto {
	return Filter(e.catalog, e.search)
}

// TryBegin sets the busy flag and returns true, or returns false when an
// operation is already in flight. Callers that get false must not issue a
// fetch.
func (e *Engine) TryBegin() bool {
	if e.busy {
		return false
	}
	e.busy = true
	return true
}

// Finish releases the busy flag. Every fetch completion path, success or
// failure, must reach exactly one Finish for the operation that set the
// flag.
func (e *Engine) Finish() {
	e.busy = false
}

// Accessors

func (e *Engine) Busy() bool             { return e.busy }
func (e *Engine) Search() string         { return e.search }
func (e *Engine) Catalog() []api.Crypto  { return e.catalog }
func (e *Engine) SelectedSymbol() string { return e.selected }

// Selected returns the currently selected asset, or nil before the first
// catalog load.
func (e *Engine) Selected() *api.Crypto {
	for i := range e.catalog {
		if e.catalog[i].Symbol == e.selected {
			return &e.catalog[i]
		}
	}
	return nil
}

func (e *Engine) Series() []api.PricePoint { return e.series }
func (e *Engine) Viewport() Viewport       { return e.viewport }
func (e *Engine) Drag() Drag               { return e.drag }

// VisibleSeries returns the series points inside the current viewport.
// Dates are ISO strings, so lexicographic comparison is chronological. An
// empty clip (a viewport outside the loaded domain) falls back to the full
// series rather than blanking the chart.
func (e *Engine) VisibleSeries() []api.PricePoint {
	if e.viewport.Full() {
		return e.series
	}
	var out []api.PricePoint
	for _, p := range e.series {
		if p.Date >= e.viewport.Left && p.Date <= e.viewport.Right {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return e.series
	}
	return out
}
