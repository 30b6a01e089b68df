// Package analyzer computes the hybrid value model over exchange candle
// history and AI sentiment.
package analyzer

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Analyzer runs the value model for the tracked universe.
type Analyzer struct {
	candles   CandleSource
	sentiment SentimentProvider
	log       zerolog.Logger
}

func New(candles CandleSource, sentiment SentimentProvider, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		candles:   candles,
		sentiment: sentiment,
		log:       log.With().Str("component", "analyzer").Logger(),
	}
}

// NormalizeSymbol canonicalizes user input to an exchange product ID:
// uppercase, with the USD quote appended when no pair is given.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s != "" && !strings.Contains(s, "-") {
		s += "-USD"
	}
	return s
}

// Analyze computes a fresh snapshot for one symbol, including a sentiment
// lookup for just that symbol.
func (a *Analyzer) Analyze(symbol string) (Result, error) {
	sym := NormalizeSymbol(symbol)
	sentiments := a.sentiment.Bulk([]string{sym})

	candles, err := a.candles.Daily(sym, minHistoryDays)
	if err != nil {
		return Result{}, err
	}

	sent, ok := sentiments[sym]
	return computeSnapshot(sym, candles, sent, ok)
}

// AnalyzeAll computes snapshots for all symbols with one bulk sentiment
// call and bounded concurrency, returning the successes ordered by final
// score, best first. Per-symbol failures are logged and skipped.
func (a *Analyzer) AnalyzeAll(symbols []string, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	sentiments := a.sentiment.Bulk(symbols)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
	)
	sem := make(chan struct{}, workers)

	for _, symbol := range symbols {
		sym := NormalizeSymbol(symbol)
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			candles, err := a.candles.Daily(sym, minHistoryDays)
			if err != nil {
				a.log.Warn().Err(err).Str("symbol", sym).Msg("Candle fetch failed")
				return
			}
			sent, ok := sentiments[sym]
			res, err := computeSnapshot(sym, candles, sent, ok)
			if err != nil {
				a.log.Warn().Err(err).Str("symbol", sym).Msg("Analysis failed")
				return
			}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	return results
}

// History returns one year of daily closes for the chart, oldest first.
func (a *Analyzer) History(symbol string) ([]PricePoint, error) {
	sym := NormalizeSymbol(symbol)
	candles, err := a.candles.Daily(sym, 365)
	if err != nil {
		return nil, err
	}

	points := make([]PricePoint, len(candles))
	for i, c := range candles {
		points[i] = PricePoint{Date: c.Date, Price: round(c.Close, 2)}
	}
	return points, nil
}
