// Package dexscreener is a client for the DEX Screener market-data HTTP
// API: token and pair prices, liquidity, volume and boost data across
// chains. Operations are methods on a Client built from a Config, with
// package-level functions bound to DefaultClient for one-off use.
//
// Calls are paced through injected token buckets instead of fixed sleeps,
// failures come back as typed errors (HTTPError, ErrNotFound,
// ErrSymbolMismatch) alongside an operator-visible log line, and batch
// operations degrade to partial results when individual requests fail.
package dexscreener

import "context"

// DefaultClient serves the package-level convenience functions. It talks
// to the public API with default pacing and a default logger.
var DefaultClient = NewClient(Config{})

// SearchPairs calls DefaultClient.SearchPairs.
func SearchPairs(ctx context.Context, query string) ([]Pair, error) {
	return DefaultClient.SearchPairs(ctx, query)
}

// SearchToken calls DefaultClient.SearchToken.
func SearchToken(ctx context.Context, query string) (*Pair, error) {
	return DefaultClient.SearchToken(ctx, query)
}

// SearchByVolume calls DefaultClient.SearchByVolume.
func SearchByVolume(ctx context.Context, query string, minVolume24h float64) ([]Pair, error) {
	return DefaultClient.SearchByVolume(ctx, query, minVolume24h)
}

// GetPair calls DefaultClient.GetPair.
func GetPair(ctx context.Context, chain, pairAddress string) (*Pair, error) {
	return DefaultClient.GetPair(ctx, chain, pairAddress)
}

// GetPairByAddress calls DefaultClient.GetPairByAddress.
func GetPairByAddress(ctx context.Context, chain, address string) (*Pair, error) {
	return DefaultClient.GetPairByAddress(ctx, chain, address)
}

// GetPairsByAddresses calls DefaultClient.GetPairsByAddresses.
func GetPairsByAddresses(ctx context.Context, addresses []string, chainFilter string) (map[string]Pair, error) {
	return DefaultClient.GetPairsByAddresses(ctx, addresses, chainFilter)
}

// GetNewPairs calls DefaultClient.GetNewPairs.
func GetNewPairs(ctx context.Context, chainID string) ([]Pair, error) {
	return DefaultClient.GetNewPairs(ctx, chainID)
}

// GetMetrics calls DefaultClient.GetMetrics.
func GetMetrics(ctx context.Context, ticker, chain string) (*Metrics, error) {
	return DefaultClient.GetMetrics(ctx, ticker, chain)
}

// BatchGetMetrics calls DefaultClient.BatchGetMetrics.
func BatchGetMetrics(ctx context.Context, requests []MetricsRequest) (map[string]Metrics, error) {
	return DefaultClient.BatchGetMetrics(ctx, requests)
}

// GetBoostedTokens calls DefaultClient.GetBoostedTokens.
func GetBoostedTokens(ctx context.Context) ([]BoostedToken, error) {
	return DefaultClient.GetBoostedTokens(ctx)
}

// GetTopBoostedTokens calls DefaultClient.GetTopBoostedTokens.
func GetTopBoostedTokens(ctx context.Context) ([]BoostedToken, error) {
	return DefaultClient.GetTopBoostedTokens(ctx)
}

// GetTokenProfiles calls DefaultClient.GetTokenProfiles.
func GetTokenProfiles(ctx context.Context) ([]TokenProfile, error) {
	return DefaultClient.GetTokenProfiles(ctx)
}

// GetLiquidityPoolAddress calls DefaultClient.GetLiquidityPoolAddress.
func GetLiquidityPoolAddress(ctx context.Context, chain, address string) (string, error) {
	return DefaultClient.GetLiquidityPoolAddress(ctx, chain, address)
}

// GetAllLiquidityPoolAddresses calls DefaultClient.GetAllLiquidityPoolAddresses.
func GetAllLiquidityPoolAddresses(ctx context.Context, chain, address string) ([]string, error) {
	return DefaultClient.GetAllLiquidityPoolAddresses(ctx, chain, address)
}
