package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"
)

const (
	// The model needs a full lookback of daily closes.
	minHistoryDays = 200

	decayWeight  = 0.7
	techWeight   = 0.3
	rsiPeriod    = 14
	scoreDamping = 0.76

	pegTarget    = 1.00
	pegTolerance = 0.02
)

var stablecoins = map[string]bool{
	"USDC-USD":  true,
	"USDT-USD":  true,
	"DAI-USD":   true,
	"PYUSD-USD": true,
	"FDUSD-USD": true,
	"TUSD-USD":  true,
	"USDD-USD":  true,
}

// Components is the metric breakdown attached to a snapshot.
type Components struct {
	FundamentalValue string   `json:"fundamental_value"`
	FundamentalScore float64  `json:"fundamental_score"`
	TechnicalRSI     float64  `json:"technical_rsi"`
	TechnicalScore   float64  `json:"technical_score"`
	VolatilityPct    float64  `json:"volatility_pct"`
	StabilityScore   float64  `json:"stability_score"`
	AISentiment      string   `json:"ai_sentiment"`
	AIMultiplier     float64  `json:"ai_multiplier"`
	AIAnalysis       string   `json:"ai_analysis"`
	AILinks          []string `json:"ai_links"`
}

// Result is one asset's analysis snapshot.
type Result struct {
	Symbol           string     `json:"symbol"`
	CurrentPrice     float64    `json:"current_price"`
	FinalScore       float64    `json:"final_score"`
	Signal           string     `json:"signal"`
	WeightedAvg      float64    `json:"weighted_avg"`
	ValueCoefficient float64    `json:"value_coefficient"`
	Margin           float64    `json:"margin"`
	Components       Components `json:"components"`
}

// PricePoint is one day of the served price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// computeSnapshot runs the hybrid value model over a full candle history.
// The score blends a decay-weighted mean-reversion component with an RSI
// momentum component, scaled by the AI sentiment multiplier. Stablecoins
// bypass the blend and are judged purely on peg distance.
func computeSnapshot(symbol string, candles []Candle, sent Sentiment, hasSentiment bool) (Result, error) {
	if len(candles) < minHistoryDays {
		return Result{}, fmt.Errorf("insufficient data for %s: %d candles", symbol, len(candles))
	}

	prices := make([]float64, len(candles))
	for i, c := range candles {
		prices[i] = c.Close
	}
	currentPrice := prices[len(prices)-1]

	// Volatility and stability
	logReturns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		logReturns = append(logReturns, math.Log(prices[i]/prices[i-1]))
	}
	annVol := stat.StdDev(logReturns, nil) * math.Sqrt(365)
	volatilityPct := annVol * 100
	stabilityScore := 100.0 * math.Exp(-annVol)

	// Age-decay weighted average price
	maxDate, err := time.Parse("2006-01-02", candles[len(candles)-1].Date)
	if err != nil {
		return Result{}, fmt.Errorf("bad candle date %q: %w", candles[len(candles)-1].Date, err)
	}
	weights := make([]float64, len(candles))
	for i, c := range candles {
		d, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			return Result{}, fmt.Errorf("bad candle date %q: %w", c.Date, err)
		}
		ageDays := maxDate.Sub(d).Hours() / 24
		weights[i] = math.Exp(-ageDays / 365.25)
	}
	weightedAvg := stat.Mean(prices, weights)

	// Z-score of the current price against the decayed mean
	zScore := 0.0
	if priceStd := stat.PopStdDev(prices, nil); priceStd > 0 {
		zScore = (currentPrice - weightedAvg) / priceStd
	}
	decayScore := clamp(50.0-zScore*20.0, 0, 100)

	// RSI momentum
	rsiSeries := talib.Rsi(prices, rsiPeriod)
	currentRSI := rsiSeries[len(rsiSeries)-1]
	if math.IsNaN(currentRSI) {
		return Result{}, fmt.Errorf("insufficient data for %s RSI", symbol)
	}
	techScore := 100 - currentRSI

	// Sentiment
	sentimentWord := "ok"
	sentimentMultiplier := 1.0
	aiAnalysis := "Awaiting live AI analysis..."
	if hasSentiment {
		sentimentWord = sent.Word
		if sent.Analysis != "" {
			aiAnalysis = sent.Analysis
		}
		switch sentimentWord {
		case "good":
			sentimentMultiplier = 1.1
		case "bad":
			sentimentMultiplier = 0.9
		}
	}

	finalScore := decayScore*decayWeight + techScore*techWeight
	finalScore = clamp(finalScore*sentimentMultiplier, 0, 100) * scoreDamping

	var signal string
	if stablecoins[symbol] {
		switch {
		case currentPrice < pegTarget-pegTolerance:
			signal, finalScore = "SELL (DE-PEG)", 0.0
		case currentPrice > pegTarget+pegTolerance:
			signal, finalScore = "BUY (PREMIUM)", 100.0
		default:
			signal, finalScore = "HOLD (PEG INTACT)", 50.0
		}
	} else {
		switch {
		case finalScore >= 75:
			signal = "STRONG BUY"
		case finalScore >= 60:
			signal = "BUY"
		case finalScore <= 25:
			signal = "STRONG SELL"
		case finalScore <= 50:
			signal = "SELL"
		default:
			signal = "HOLD"
		}
	}

	ticker, _, _ := strings.Cut(symbol, "-")
	aiLinks := []string{
		fmt.Sprintf("https://finance.yahoo.com/quote/%s/news/", symbol),
		fmt.Sprintf("https://news.google.com/search?q=%s+crypto+news", ticker),
	}

	return Result{
		Symbol:           symbol,
		CurrentPrice:     round(currentPrice, 3),
		FinalScore:       round(finalScore, 1),
		Signal:           signal,
		WeightedAvg:      round(weightedAvg, 3),
		ValueCoefficient: round(zScore, 3),
		Margin:           round(finalScore-50, 1),
		Components: Components{
			FundamentalValue: fmt.Sprintf("$%.3f", weightedAvg),
			FundamentalScore: round(decayScore, 1),
			TechnicalRSI:     round(currentRSI, 1),
			TechnicalScore:   round(techScore, 1),
			VolatilityPct:    round(volatilityPct, 2),
			StabilityScore:   round(stabilityScore, 1),
			AISentiment:      sentimentWord,
			AIMultiplier:     sentimentMultiplier,
			AIAnalysis:       aiAnalysis,
			AILinks:          aiLinks,
		},
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
