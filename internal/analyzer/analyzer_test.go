package analyzer

import (
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

type fakeCandles struct {
	data map[string][]Candle
}

func (f fakeCandles) Daily(symbol string, days int) ([]Candle, error) {
	candles, ok := f.data[symbol]
	if !ok {
		return nil, fmt.Errorf("no candle data for %s", symbol)
	}
	return candles, nil
}

type fixedSentiment map[string]Sentiment

func (f fixedSentiment) Bulk(symbols []string) map[string]Sentiment { return f }

func testSeries(base float64) []Candle {
	return genCandles(250, func(i int) float64 {
		return base + base*0.05*math.Sin(float64(i)/12)
	})
}

func TestAnalyzeNormalizesInput(t *testing.T) {
	a := New(fakeCandles{data: map[string][]Candle{"BTC-USD": testSeries(40000)}}, NoopSentiment{}, zerolog.Nop())

	res, err := a.Analyze("btc")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Symbol != "BTC-USD" {
		t.Errorf("symbol = %q, want BTC-USD", res.Symbol)
	}
}

func TestAnalyzeUnknownSymbol(t *testing.T) {
	a := New(fakeCandles{data: map[string][]Candle{}}, NoopSentiment{}, zerolog.Nop())
	if _, err := a.Analyze("DOGE"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestAnalyzeAllSortsAndSkipsFailures(t *testing.T) {
	source := fakeCandles{data: map[string][]Candle{
		"BTC-USD":  testSeries(40000),
		"ETH-USD":  testSeries(2500),
		"USDT-USD": testSeries(1.0),
	}}
	a := New(source, NoopSentiment{}, zerolog.Nop())

	results := a.AnalyzeAll([]string{"BTC-USD", "ETH-USD", "USDT-USD", "MISSING-USD"}, 3)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (failures skipped)", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].FinalScore > results[i-1].FinalScore {
			t.Fatalf("results not sorted by score: %v then %v", results[i-1].FinalScore, results[i].FinalScore)
		}
	}
}

func TestAnalyzeAppliesSentiment(t *testing.T) {
	source := fakeCandles{data: map[string][]Candle{"ETH-USD": testSeries(2500)}}
	sent := fixedSentiment{"ETH-USD": {Word: "good", Analysis: "momentum looks strong"}}
	a := New(source, sent, zerolog.Nop())

	res, err := a.Analyze("ETH-USD")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Components.AISentiment != "good" || res.Components.AIMultiplier != 1.1 {
		t.Errorf("sentiment not applied: %q ×%v", res.Components.AISentiment, res.Components.AIMultiplier)
	}
	if res.Components.AIAnalysis != "momentum looks strong" {
		t.Errorf("analysis blurb not carried: %q", res.Components.AIAnalysis)
	}
}

func TestHistoryRoundsAndOrders(t *testing.T) {
	source := fakeCandles{data: map[string][]Candle{"BTC-USD": {
		{Date: "2024-01-01", Close: 100.123456},
		{Date: "2024-01-02", Close: 101.987654},
	}}}
	a := New(source, NoopSentiment{}, zerolog.Nop())

	points, err := a.History("btc")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points", len(points))
	}
	if points[0].Date != "2024-01-01" || points[1].Date != "2024-01-02" {
		t.Errorf("points out of order: %v", points)
	}
	if points[0].Price != 100.12 || points[1].Price != 101.99 {
		t.Errorf("prices not rounded to cents: %v", points)
	}
}
