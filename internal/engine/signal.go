package engine

import "strings"

// Category buckets analyzer signal strings for presentation.
type Category int

const (
	Neutral Category = iota
	Positive
	Negative
)

// Classification is the presentation hint derived from a signal string.
type Classification struct {
	Category Category
	Icon     string
}

// Classify maps an analyzer signal to its presentation classification. The
// match is case-insensitive and substring-based, so compound signals like
// "STRONG BUY" or "SELL (DE-PEG)" classify by their embedded keyword.
// Unknown or empty signals are neutral; the function never fails.
func Classify(signal string) Classification {
	s := strings.ToUpper(signal)
	switch {
	case strings.Contains(s, "BUY") || strings.Contains(s, "GOOD"):
		return Classification{Category: Positive, Icon: "▲"}
	case strings.Contains(s, "SELL") || strings.Contains(s, "BAD") || strings.Contains(s, "DE-PEG"):
		return Classification{Category: Negative, Icon: "▼"}
	default:
		return Classification{Category: Neutral, Icon: "■"}
	}
}
