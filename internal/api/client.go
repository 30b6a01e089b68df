// Package api provides the HTTP client for the analyzer service.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Response types

// Components is the optional metric breakdown attached to an analyzed asset.
type Components struct {
	FundamentalValue string   `json:"fundamental_value,omitempty"`
	FundamentalScore float64  `json:"fundamental_score,omitempty"`
	TechnicalRSI     float64  `json:"technical_rsi,omitempty"`
	TechnicalScore   float64  `json:"technical_score,omitempty"`
	VolatilityPct    *float64 `json:"volatility_pct,omitempty"`
	StabilityScore   *float64 `json:"stability_score,omitempty"`
	AISentiment      string   `json:"ai_sentiment,omitempty"`
	AIMultiplier     float64  `json:"ai_multiplier,omitempty"`
	AIAnalysis       string   `json:"ai_analysis,omitempty"`
	AILinks          []string `json:"ai_links,omitempty"`
}

// Crypto is one tracked asset with its latest analysis snapshot.
type Crypto struct {
	Symbol           string      `json:"symbol"`
	CurrentPrice     float64     `json:"current_price"`
	FinalScore       float64     `json:"final_score"`
	Signal           string      `json:"signal"`
	WeightedAvg      float64     `json:"weighted_avg,omitempty"`
	ValueCoefficient *float64    `json:"value_coefficient,omitempty"`
	Margin           float64     `json:"margin,omitempty"`
	Components       *Components `json:"components,omitempty"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Internal helpers

func (c *Client) get(path string, target any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// Endpoints

// Cryptos fetches the analyzed catalog, ordered by final score.
func (c *Client) Cryptos() ([]Crypto, error) {
	var resp struct {
		Cryptos []Crypto `json:"cryptos"`
		Error   string   `json:"error"`
	}
	if err := c.get("/cryptos", &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("catalog fetch failed: %s", resp.Error)
	}
	return resp.Cryptos, nil
}

// History fetches the daily price series for one symbol, oldest first.
func (c *Client) History(symbol string) ([]PricePoint, error) {
	var resp struct {
		Data  []PricePoint `json:"data"`
		Error string       `json:"error"`
	}
	if err := c.get("/history/"+symbol, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("history fetch failed for %s: %s", symbol, resp.Error)
	}
	return resp.Data, nil
}

// Analyze triggers a fresh analysis for one symbol and returns the new
// snapshot.
func (c *Client) Analyze(symbol string) (Crypto, error) {
	var resp struct {
		Crypto
		Error string `json:"error"`
	}
	if err := c.get("/analyze/"+symbol, &resp); err != nil {
		return Crypto{}, err
	}
	if resp.Error != "" {
		return Crypto{}, fmt.Errorf("analysis failed for %s: %s", symbol, resp.Error)
	}
	return resp.Crypto, nil
}
