package engine

import "strings"

// ZeroAddress is returned for symbols without a known ERC-20 contract.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Ethereum mainnet contracts for the transferable stablecoins.
var tokenAddresses = map[string]string{
	"USDT": "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	"USDC": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	"DAI":  "0x6B175474E89094C44Da98b954EedeAC495271d0F",
}

// TokenAddress resolves a catalog symbol to its ERC-20 contract address.
// Symbols carry the exchange quote suffix ("USDT-USD"), which is stripped
// before lookup. Unmapped symbols resolve to the zero address.
func TokenAddress(symbol string) string {
	base, _, _ := strings.Cut(strings.ToUpper(symbol), "-")
	if addr, ok := tokenAddresses[base]; ok {
		return addr
	}
	return ZeroAddress
}
