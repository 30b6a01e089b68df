package engine

import (
	"testing"

	"liquidity-engine/internal/api"
)

func catalogOf(symbols ...string) []api.Crypto {
	out := make([]api.Crypto, len(symbols))
	for i, s := range symbols {
		out[i] = api.Crypto{Symbol: s}
	}
	return out
}

func symbolsOf(catalog []api.Crypto) []string {
	out := make([]string, len(catalog))
	for i, c := range catalog {
		out[i] = c.Symbol
	}
	return out
}

func TestFilter(t *testing.T) {
	catalog := catalogOf("BTC-USD", "ETH-USD", "USDT-USD", "SOL-USD", "USDC-USD")

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term is identity", "", []string{"BTC-USD", "ETH-USD", "USDT-USD", "SOL-USD", "USDC-USD"}},
		{"exact symbol", "BTC-USD", []string{"BTC-USD"}},
		{"substring", "USD", []string{"BTC-USD", "ETH-USD", "USDT-USD", "SOL-USD", "USDC-USD"}},
		{"stable prefix preserves order", "usd", []string{"BTC-USD", "ETH-USD", "USDT-USD", "SOL-USD", "USDC-USD"}},
		{"mid symbol", "sd t", nil},
		{"case insensitive", "eth", []string{"ETH-USD"}},
		{"stablecoins", "USDT", []string{"USDT-USD"}},
		{"no match", "XRP", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := symbolsOf(Filter(catalog, tt.term))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.term, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter(%q) = %v, want %v", tt.term, got, tt.want)
				}
			}
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	catalog := catalogOf("BTC-USD", "ETH-USD")
	Filter(catalog, "ETH")
	if catalog[0].Symbol != "BTC-USD" || catalog[1].Symbol != "ETH-USD" {
		t.Fatalf("catalog mutated: %v", symbolsOf(catalog))
	}
}
