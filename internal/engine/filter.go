package engine

import (
	"strings"

	"liquidity-engine/internal/api"
)

// Filter returns the catalog entries whose symbol contains term,
// case-insensitively. Order is preserved and the catalog is never mutated.
// An empty term returns the catalog unchanged.
func Filter(catalog []api.Crypto, term string) []api.Crypto {
	if term == "" {
		return catalog
	}
	needle := strings.ToUpper(term)
	var out []api.Crypto
	for _, c := range catalog {
		if strings.Contains(strings.ToUpper(c.Symbol), needle) {
			out = append(out, c)
		}
	}
	return out
}
