package dexscreener

import (
	"context"
	"sort"
)

// BestByLiquidity returns the pair with the highest USD liquidity, or nil
// for an empty slice. Absent liquidity counts as zero and the first
// maximal pair wins ties, so reordering equal inputs never changes the
// selected liquidity value.
func BestByLiquidity(pairs []Pair) *Pair {
	if len(pairs) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(pairs); i++ {
		if pairs[i].LiquidityUSD() > pairs[best].LiquidityUSD() {
			best = i
		}
	}
	return &pairs[best]
}

// filterByChain keeps only pairs on the given chain slug.
func filterByChain(pairs []Pair, slug string) []Pair {
	var out []Pair
	for _, p := range pairs {
		if p.ChainID == slug {
			out = append(out, p)
		}
	}
	return out
}

// groupByBaseToken buckets pairs by their base-token address.
func groupByBaseToken(pairs []Pair) map[string][]Pair {
	groups := make(map[string][]Pair)
	for _, p := range pairs {
		groups[p.BaseToken.Address] = append(groups[p.BaseToken.Address], p)
	}
	return groups
}

// GetPair fetches a single pair by its pair contract address on the given
// chain. Returns ErrNotFound when the upstream knows no such pair.
func (c *Client) GetPair(ctx context.Context, chain, pairAddress string) (*Pair, error) {
	slug := NormalizeChain(chain)
	var res pairsResponse
	if err := c.get(ctx, pairsPath+slug+"/"+pairAddress, &res); err != nil {
		return nil, err
	}
	if len(res.Pairs) > 0 {
		return &res.Pairs[0], nil
	}
	// Some deployments answer the single-pair route with a bare "pair"
	// object instead of the pairs array.
	if res.Pair != nil {
		return res.Pair, nil
	}
	return nil, ErrNotFound
}

// GetNewPairs fetches the chain's pairs and returns them newest first by
// creation timestamp.
func (c *Client) GetNewPairs(ctx context.Context, chainID string) ([]Pair, error) {
	slug := NormalizeChain(chainID)
	pairs, err := c.getPairs(ctx, pairsPath+slug)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].PairCreatedAt > pairs[j].PairCreatedAt
	})
	return pairs, nil
}
