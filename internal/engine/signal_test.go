package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		signal string
		want   Category
		icon   string
	}{
		{"strong buy", "STRONG BUY", Positive, "▲"},
		{"plain buy", "BUY", Positive, "▲"},
		{"good sentiment", "GOOD", Positive, "▲"},
		{"lowercase buy", "buy", Positive, "▲"},
		{"premium band", "BUY (PREMIUM)", Positive, "▲"},
		{"strong sell", "STRONG SELL", Negative, "▼"},
		{"plain sell", "SELL", Negative, "▼"},
		{"bad sentiment", "bad", Negative, "▼"},
		{"depeg", "SELL (DE-PEG)", Negative, "▼"},
		{"hold", "HOLD", Neutral, "■"},
		{"peg intact", "HOLD (PEG INTACT)", Neutral, "■"},
		{"ok sentiment", "ok", Neutral, "■"},
		{"empty", "", Neutral, "■"},
		{"garbage", "N/A???", Neutral, "■"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.signal)
			if got.Category != tt.want {
				t.Errorf("Classify(%q) category = %v, want %v", tt.signal, got.Category, tt.want)
			}
			if got.Icon != tt.icon {
				t.Errorf("Classify(%q) icon = %q, want %q", tt.signal, got.Icon, tt.icon)
			}
		})
	}
}
