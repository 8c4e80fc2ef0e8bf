package dexscreener

import (
	"context"
	"net/url"
	"sort"
)

// DefaultMinVolume24h is the 24h volume floor SearchByVolume applies when
// the caller passes a non-positive threshold.
const DefaultMinVolume24h = 30000

// SearchPairs runs a raw search query against the upstream and returns
// every pair it matched, in upstream order.
func (c *Client) SearchPairs(ctx context.Context, query string) ([]Pair, error) {
	q := url.Values{}
	q.Set("q", query)
	return c.getPairs(ctx, searchPath+"?"+q.Encode())
}

// SearchToken searches for a token by free-form query and returns the
// matched pair with the highest USD liquidity. The search is fuzzy, so
// the returned pair's base token is not guaranteed to be the token the
// query named; see GetMetrics for a symbol-confirmed lookup. Returns
// ErrNotFound when the search matched nothing.
func (c *Client) SearchToken(ctx context.Context, query string) (*Pair, error) {
	pairs, err := c.SearchPairs(ctx, query)
	if err != nil {
		return nil, err
	}
	best := BestByLiquidity(pairs)
	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}

// SearchByVolume searches for pairs matching query and keeps those whose
// 24h volume meets minVolume24h, sorted by 24h volume descending. A
// non-positive threshold falls back to DefaultMinVolume24h.
func (c *Client) SearchByVolume(ctx context.Context, query string, minVolume24h float64) ([]Pair, error) {
	if minVolume24h <= 0 {
		minVolume24h = DefaultMinVolume24h
	}
	pairs, err := c.SearchPairs(ctx, query)
	if err != nil {
		return nil, err
	}
	var out []Pair
	for _, p := range pairs {
		if p.Volume.H24 >= minVolume24h {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume.H24 > out[j].Volume.H24
	})
	return out, nil
}
