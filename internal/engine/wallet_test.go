package engine

import "testing"

func TestTokenAddress(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"USDT-USD", "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		{"USDC-USD", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"},
		{"DAI-USD", "0x6B175474E89094C44Da98b954EedeAC495271d0F"},
		{"usdt-usd", "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		{"USDT", "0xdAC17F958D2ee523a2206206994597C13D831ec7"},
		{"BTC-USD", ZeroAddress},
		{"", ZeroAddress},
	}
	for _, tt := range tests {
		if got := TokenAddress(tt.symbol); got != tt.want {
			t.Errorf("TokenAddress(%q) = %s, want %s", tt.symbol, got, tt.want)
		}
	}
}
