package analyzer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Candle is one daily close.
type Candle struct {
	Date  string
	Close float64
}

// CandleSource provides daily close history for an exchange product.
type CandleSource interface {
	Daily(symbol string, days int) ([]Candle, error)
}

const (
	coinbaseBaseURL  = "https://api.exchange.coinbase.com"
	dailyGranularity = 86400
	// The exchange caps candle responses, so requests are paged in windows.
	maxWindowDays = 200
)

// CoinbaseSource fetches daily candles from the Coinbase Exchange API.
type CoinbaseSource struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewCoinbaseSource(log zerolog.Logger) *CoinbaseSource {
	return &CoinbaseSource{
		baseURL:    coinbaseBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.With().Str("component", "candles").Logger(),
	}
}

// SetBaseURL overrides the exchange endpoint. Used by tests.
func (s *CoinbaseSource) SetBaseURL(u string) {
	s.baseURL = u
}

// Daily returns up to days of daily closes for symbol, oldest first. The
// range is fetched newest-window-first in pages of at most maxWindowDays;
// rate-limit responses are retried after a pause.
func (s *CoinbaseSource) Daily(symbol string, days int) ([]Candle, error) {
	endpoint := fmt.Sprintf("%s/products/%s/candles", s.baseURL, url.PathEscape(symbol))

	end := time.Now().UTC()
	start := end.Add(-time.Duration(days) * 24 * time.Hour)

	var all []Candle
	currentEnd := end

	for currentEnd.After(start) {
		currentStart := currentEnd.Add(-maxWindowDays * 24 * time.Hour)
		if currentStart.Before(start) {
			currentStart = start
		}

		page, retry, err := s.fetchWindow(endpoint, currentStart, currentEnd)
		if err != nil {
			return nil, err
		}
		if retry {
			time.Sleep(time.Second)
			continue
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)

		currentEnd = currentStart.Add(-time.Second)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no candle data for %s", symbol)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Date < all[j].Date })
	return all, nil
}

func (s *CoinbaseSource) fetchWindow(endpoint string, start, end time.Time) ([]Candle, bool, error) {
	q := url.Values{}
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))
	q.Set("granularity", fmt.Sprintf("%d", dailyGranularity))

	resp, err := s.httpClient.Get(endpoint + "?" + q.Encode())
	if err != nil {
		return nil, false, fmt.Errorf("candle request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		s.log.Debug().Msg("Rate limited, retrying window")
		return nil, true, nil
	default:
		return nil, false, fmt.Errorf("candle request returned %d", resp.StatusCode)
	}

	// Rows are [time, low, high, open, close, volume], newest first.
	var rows [][]float64
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, false, fmt.Errorf("candle decode failed: %w", err)
	}

	out := make([]Candle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		out = append(out, Candle{
			Date:  time.Unix(int64(row[0]), 0).UTC().Format("2006-01-02"),
			Close: row[4],
		})
	}
	return out, false, nil
}
