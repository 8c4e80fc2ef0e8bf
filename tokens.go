package dexscreener

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetPairByAddress looks up the best pair for a token contract address on
// the given chain. When the upstream returns pairs but none on the
// requested chain, the best-liquidity pair across all returned chains is
// used instead of failing; the upstream omits exact chain matches for
// some tokens. Returns ErrNotFound when no pairs come back at all.
func (c *Client) GetPairByAddress(ctx context.Context, chain, address string) (*Pair, error) {
	slug := NormalizeChain(chain)
	pairs, err := c.getPairs(ctx, tokensPath+address)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrNotFound
	}
	matched := filterByChain(pairs, slug)
	if len(matched) == 0 {
		c.log.WithFields(logrus.Fields{
			"chain":   slug,
			"address": address,
		}).Debug("no pair on requested chain, using best pair across chains")
		return BestByLiquidity(pairs), nil
	}
	return BestByLiquidity(matched), nil
}

// GetPairsByAddresses resolves up to thousands of token addresses to their
// best-liquidity pairs in one call. Addresses are fetched sequentially in
// chunks of MaxAddressesPerRequest; a failed chunk is logged and skipped so
// the remaining chunks still contribute, and the request limiter spaces
// consecutive chunks apart. The result maps each base-token address the
// upstream reported to its best pair. A non-empty chainFilter restricts
// every chunk to that chain before selection. The returned error is
// non-nil only when ctx ended the batch early; the partial map is still
// returned alongside it.
func (c *Client) GetPairsByAddresses(ctx context.Context, addresses []string, chainFilter string) (map[string]Pair, error) {
	result := make(map[string]Pair)
	if len(addresses) == 0 {
		return result, nil
	}

	slug := ""
	if chainFilter != "" {
		slug = NormalizeChain(chainFilter)
	}

	for start := 0; start < len(addresses); start += MaxAddressesPerRequest {
		end := start + MaxAddressesPerRequest
		if end > len(addresses) {
			end = len(addresses)
		}
		chunk := addresses[start:end]

		pairs, err := c.getPairs(ctx, tokensPath+strings.Join(chunk, ","))
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			c.log.WithError(err).WithFields(logrus.Fields{
				"chunk":     start / MaxAddressesPerRequest,
				"addresses": len(chunk),
			}).Warn("skipping failed address chunk")
			continue
		}

		if slug != "" {
			pairs = filterByChain(pairs, slug)
		}
		for addr, group := range groupByBaseToken(pairs) {
			if best := BestByLiquidity(group); best != nil {
				result[addr] = *best
			}
		}
	}
	return result, nil
}

// GetLiquidityPoolAddress returns the pair contract address of the best
// pool for a token, resolved via GetPairByAddress.
func (c *Client) GetLiquidityPoolAddress(ctx context.Context, chain, address string) (string, error) {
	pair, err := c.GetPairByAddress(ctx, chain, address)
	if err != nil {
		return "", err
	}
	return pair.PairAddress, nil
}

// GetAllLiquidityPoolAddresses returns every pool address the token trades
// in on the given chain, de-duplicated in first-seen order.
func (c *Client) GetAllLiquidityPoolAddresses(ctx context.Context, chain, address string) ([]string, error) {
	slug := NormalizeChain(chain)
	pairs, err := c.getPairs(ctx, tokensPath+address)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, p := range filterByChain(pairs, slug) {
		if _, ok := seen[p.PairAddress]; ok {
			continue
		}
		seen[p.PairAddress] = struct{}{}
		out = append(out, p.PairAddress)
	}
	return out, nil
}
