package dexscreener

import "strings"

// Short chain tickers to the canonical slugs the upstream API expects.
var chainSlugs = map[string]string{
	"SOL":   "solana",
	"ETH":   "ethereum",
	"BASE":  "base",
	"ARB":   "arbitrum",
	"BSC":   "bsc",
	"AVAX":  "avalanche",
	"MATIC": "polygon",
	"FTM":   "fantom",
	"OP":    "optimism",
}

// NormalizeChain maps a short chain ticker (case-insensitive) to its
// canonical chain slug, e.g. "SOL" -> "solana". Unknown chains pass
// through lower-cased so callers may supply a slug directly.
func NormalizeChain(chain string) string {
	if slug, ok := chainSlugs[strings.ToUpper(chain)]; ok {
		return slug
	}
	return strings.ToLower(chain)
}
