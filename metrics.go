package dexscreener

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Metrics is the flat projection of one Pair used for watchlists and
// alerting. Every numeric field defaults to zero when the source pair
// omitted it; MarketCap falls back to FDV when the upstream reported no
// market cap.
type Metrics struct {
	Ticker         string    `json:"ticker"`
	Name           string    `json:"name"`
	Chain          string    `json:"chain"`
	Contract       string    `json:"contract"`
	PriceUSD       float64   `json:"price_usd"`
	PriceChange24h float64   `json:"price_change_24h"`
	Volume24h      float64   `json:"volume_24h"`
	LiquidityUSD   float64   `json:"liquidity_usd"`
	MarketCap      float64   `json:"market_cap"`
	FDV            float64   `json:"fdv"`
	PairURL        string    `json:"pair_url"`
	DexID          string    `json:"dex_id"`
	ImageURL       string    `json:"image_url,omitempty"`

	// CapturedAt is stamped at projection time, not taken from the API.
	CapturedAt time.Time `json:"captured_at"`
}

// MetricsRequest names one token for BatchGetMetrics. Chain and Contract
// are optional; when both are set the lookup goes by contract address
// instead of ticker search.
type MetricsRequest struct {
	Ticker   string
	Chain    string
	Contract string
}

// ToMetrics flattens a pair into a Metrics record. Pure apart from the
// CapturedAt stamp; never fails.
func ToMetrics(p *Pair) *Metrics {
	m := &Metrics{
		Ticker:         p.BaseToken.Symbol,
		Name:           p.BaseToken.Name,
		Chain:          strings.ToUpper(p.ChainID),
		Contract:       p.BaseToken.Address,
		PriceUSD:       p.PriceUSD(),
		PriceChange24h: p.PriceChange.H24,
		Volume24h:      p.Volume.H24,
		LiquidityUSD:   p.LiquidityUSD(),
		MarketCap:      p.MarketCap,
		FDV:            p.FDV,
		PairURL:        p.URL,
		DexID:          p.DexID,
		CapturedAt:     time.Now().UTC(),
	}
	if m.MarketCap == 0 {
		m.MarketCap = p.FDV
	}
	if p.Info != nil {
		m.ImageURL = p.Info.ImageURL
	}
	return m
}

// GetMetrics looks up current metrics for a ticker, optionally narrowed
// by chain (pass "" for any chain). Because the underlying search is
// fuzzy, the result's base-token symbol is confirmed case-insensitively
// against the requested ticker; on mismatch the search is retried once
// with the bare ticker, and a second mismatch yields ErrSymbolMismatch
// rather than metrics for the wrong token.
func (c *Client) GetMetrics(ctx context.Context, ticker, chain string) (*Metrics, error) {
	query := ticker
	if chain != "" {
		query = ticker + " " + chain
	}

	pair, err := c.SearchToken(ctx, query)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(pair.BaseToken.Symbol, ticker) {
		c.log.WithFields(logrus.Fields{
			"ticker":  ticker,
			"matched": pair.BaseToken.Symbol,
		}).Debug("fuzzy search returned different symbol, retrying with bare ticker")

		pair, err = c.SearchToken(ctx, ticker)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(pair.BaseToken.Symbol, ticker) {
			return nil, ErrSymbolMismatch
		}
	}
	return ToMetrics(pair), nil
}

// BatchGetMetrics resolves metrics for many tokens strictly sequentially,
// pacing items through the batch limiter. Requests carrying both Chain
// and Contract are resolved by address, the rest by confirmed ticker
// search. Requests that fail are logged and left out of the result map,
// which is keyed by the requested ticker. The returned error is non-nil
// only when ctx ended the batch early; the partial map is still returned
// alongside it.
func (c *Client) BatchGetMetrics(ctx context.Context, requests []MetricsRequest) (map[string]Metrics, error) {
	result := make(map[string]Metrics, len(requests))
	for _, req := range requests {
		if err := c.batchLimiter.Wait(ctx); err != nil {
			return result, err
		}

		var m *Metrics
		var err error
		if req.Contract != "" && req.Chain != "" {
			var pair *Pair
			pair, err = c.GetPairByAddress(ctx, req.Chain, req.Contract)
			if err == nil {
				m = ToMetrics(pair)
			}
		} else {
			m, err = c.GetMetrics(ctx, req.Ticker, req.Chain)
		}
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			c.log.WithError(err).WithField("ticker", req.Ticker).Debug("metrics unavailable, skipping")
			continue
		}
		result[req.Ticker] = *m
	}
	return result, nil
}
