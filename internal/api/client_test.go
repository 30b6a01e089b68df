package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestCryptos(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cryptos", r.URL.Path)
		w.Write([]byte(`{"cryptos": [
			{"symbol": "BTC-USD", "current_price": 42000.5, "final_score": 61.2, "signal": "BUY"},
			{"symbol": "ETH-USD", "current_price": 2500.1, "final_score": 48.0, "signal": "SELL"}
		], "total": 2, "source": "database_cache"}`))
	})

	cryptos, err := client.Cryptos()
	require.NoError(t, err)
	require.Len(t, cryptos, 2)
	assert.Equal(t, "BTC-USD", cryptos[0].Symbol)
	assert.Equal(t, 42000.5, cryptos[0].CurrentPrice)
	assert.Equal(t, "SELL", cryptos[1].Signal)
}

func TestCryptosBodyError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "upstream unavailable"}`))
	})

	_, err := client.Cryptos()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history/BTC-USD", r.URL.Path)
		w.Write([]byte(`{"data": [
			{"date": "2024-01-01", "price": 42000.5},
			{"date": "2024-01-02", "price": 42500.0}
		]}`))
	})

	points, err := client.History("BTC-USD")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, 42500.0, points[1].Price)
}

func TestHistoryBodyError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "No data found"}`))
	})

	_, err := client.History("MISSING-USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING-USD")
}

func TestAnalyze(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze/ETH-USD", r.URL.Path)
		w.Write([]byte(`{
			"symbol": "ETH-USD", "current_price": 2500.1, "final_score": 63.4,
			"signal": "BUY", "weighted_avg": 2400.0,
			"components": {"technical_rsi": 41.2, "ai_sentiment": "good", "ai_multiplier": 1.1}
		}`))
	})

	crypto, err := client.Analyze("ETH-USD")
	require.NoError(t, err)
	assert.Equal(t, "ETH-USD", crypto.Symbol)
	assert.Equal(t, 63.4, crypto.FinalScore)
	require.NotNil(t, crypto.Components)
	assert.Equal(t, "good", crypto.Components.AISentiment)
}

func TestAnalyzeBodyError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Insufficient data for DOGE-USD", "symbol": "DOGE-USD"}`))
	})

	_, err := client.Analyze("DOGE-USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient data")
}

func TestHTTPStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Cryptos()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
