package dexscreener

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token identifies one side of a trading pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// TxnCount holds buy/sell transaction counts for one window.
type TxnCount struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Txns holds transaction counts over the four fixed windows.
type Txns struct {
	M5  TxnCount `json:"m5"`
	H1  TxnCount `json:"h1"`
	H6  TxnCount `json:"h6"`
	H24 TxnCount `json:"h24"`
}

// Volume holds USD trading volume over the four fixed windows.
type Volume struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PriceChange holds price change percentages over the four fixed windows.
type PriceChange struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// Liquidity holds pool reserves in USD and per-side native amounts.
type Liquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// Website is one website entry from a pair's info block.
type Website struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// Social is one social-link entry from a pair's info block.
type Social struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Info carries the optional pair metadata block.
type Info struct {
	ImageURL  string    `json:"imageUrl,omitempty"`
	Header    string    `json:"header,omitempty"`
	OpenGraph string    `json:"openGraph,omitempty"`
	Websites  []Website `json:"websites,omitempty"`
	Socials   []Social  `json:"socials,omitempty"`
}

// Boosts carries the active boost amount for a pair.
type Boosts struct {
	Active float64 `json:"active"`
}

// Pair is a single trading pair record as returned by the upstream API.
// Records are immutable once decoded; nested blocks that the API omits
// (liquidity, info, boosts) are nil and treated as zero/absent by the
// accessor methods.
type Pair struct {
	ChainID     string      `json:"chainId"`
	DexID       string      `json:"dexId"`
	URL         string      `json:"url"`
	PairAddress string      `json:"pairAddress"`
	Labels      []string    `json:"labels,omitempty"`
	BaseToken   Token       `json:"baseToken"`
	QuoteToken  Token       `json:"quoteToken"`
	PriceNative string      `json:"priceNative"`
	PriceUsd    string      `json:"priceUsd"`
	Txns        Txns        `json:"txns"`
	Volume      Volume      `json:"volume"`
	PriceChange PriceChange `json:"priceChange"`
	Liquidity   *Liquidity  `json:"liquidity,omitempty"`
	FDV         float64     `json:"fdv,omitempty"`
	MarketCap   float64     `json:"marketCap,omitempty"`

	// PairCreatedAt is the pair creation timestamp in epoch milliseconds.
	PairCreatedAt int64 `json:"pairCreatedAt,omitempty"`

	Info   *Info   `json:"info,omitempty"`
	Boosts *Boosts `json:"boosts,omitempty"`
}

// LiquidityUSD returns the pair's USD liquidity, or 0 when the upstream
// omitted the liquidity block.
func (p *Pair) LiquidityUSD() float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.USD
}

// Price parses the USD price string. Unparseable or empty prices
// decode to zero rather than failing.
func (p *Pair) Price() decimal.Decimal {
	d, err := decimal.NewFromString(p.PriceUsd)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PriceNativeAmount parses the native-denominated price string, zero on
// parse failure.
func (p *Pair) PriceNativeAmount() decimal.Decimal {
	d, err := decimal.NewFromString(p.PriceNative)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PriceUSD is the float64 convenience form of Price.
func (p *Pair) PriceUSD() float64 {
	return p.Price().InexactFloat64()
}

// CreatedAt converts the epoch-millisecond creation stamp to time.Time.
// The zero stamp yields the Unix epoch.
func (p *Pair) CreatedAt() time.Time {
	return time.UnixMilli(p.PairCreatedAt).UTC()
}

// Link is one external link on a boosted token or token profile.
type Link struct {
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// BoostedToken is a promoted-token record from the boost endpoints.
type BoostedToken struct {
	URL          string  `json:"url"`
	ChainID      string  `json:"chainId"`
	TokenAddress string  `json:"tokenAddress"`
	Amount       float64 `json:"amount"`
	TotalAmount  float64 `json:"totalAmount"`
	Icon         string  `json:"icon,omitempty"`
	Header       string  `json:"header,omitempty"`
	Description  string  `json:"description,omitempty"`
	Links        []Link  `json:"links,omitempty"`
}

// TokenProfile is a token profile record from the profiles endpoint.
type TokenProfile struct {
	URL          string `json:"url"`
	ChainID      string `json:"chainId"`
	TokenAddress string `json:"tokenAddress"`
	Icon         string `json:"icon,omitempty"`
	Header       string `json:"header,omitempty"`
	OpenGraph    string `json:"openGraph,omitempty"`
	Description  string `json:"description,omitempty"`
	Links        []Link `json:"links,omitempty"`
}

// pairsResponse is the envelope returned by the pair-bearing endpoints.
// A null or absent pairs array decodes to an empty slice of results.
type pairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pair          *Pair  `json:"pair"`
	Pairs         []Pair `json:"pairs"`
}
