package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public upstream API root.
const DefaultBaseURL = "https://api.dexscreener.com"

const (
	// MaxAddressesPerRequest is the upstream per-call cap on the
	// tokens-by-address endpoint.
	MaxAddressesPerRequest = 30

	// DefaultRequestInterval is the minimum spacing between consecutive
	// upstream requests enforced by the default limiter. A lone request
	// spends the banked token and is never delayed; back-to-back batch
	// chunks are spaced by this interval.
	DefaultRequestInterval = 100 * time.Millisecond

	// DefaultBatchItemInterval is the minimum spacing between items in
	// BatchGetMetrics, bounding batch throughput to ~4 items per second.
	DefaultBatchItemInterval = 250 * time.Millisecond

	defaultTimeout = 10 * time.Second
)

// Endpoint paths, relative to the base URL.
const (
	searchPath       = "/latest/dex/search"
	tokensPath       = "/latest/dex/tokens/"
	pairsPath        = "/latest/dex/pairs/"
	boostsLatestPath = "/token-boosts/latest/v1"
	boostsTopPath    = "/token-boosts/top/v1"
	profilesPath     = "/token-profiles/latest/v1"
)

// Config holds configuration for a Client. Zero-value fields fall back
// to defaults, so Config{} yields a working client for the public API.
type Config struct {
	// BaseURL overrides the upstream API root, primarily for tests.
	BaseURL string

	// HTTPClient overrides the transport. When nil a client with
	// Timeout (or the 10s default) is created.
	HTTPClient *http.Client

	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration

	// Logger receives failure diagnostics. Defaults to logrus.New().
	Logger *logrus.Logger

	// Limiter paces every outbound request. Defaults to a token bucket
	// of one banked token refilled every DefaultRequestInterval. Inject
	// rate.NewLimiter(rate.Inf, 0) to disable pacing in tests.
	Limiter *rate.Limiter

	// BatchLimiter paces BatchGetMetrics items. Defaults to one banked
	// token refilled every DefaultBatchItemInterval.
	BatchLimiter *rate.Limiter
}

// Client is a DEX Screener API client. All operations are bound methods
// over this shared configuration; the client holds no mutable state and
// is safe for concurrent use, with pacing shared across callers through
// the injected limiters.
type Client struct {
	baseURL      string
	http         *http.Client
	log          *logrus.Logger
	limiter      *rate.Limiter
	batchLimiter *rate.Limiter
}

// NewClient creates a Client, filling defaults for any zero Config field.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(DefaultRequestInterval), 1)
	}
	batchLimiter := cfg.BatchLimiter
	if batchLimiter == nil {
		batchLimiter = rate.NewLimiter(rate.Every(DefaultBatchItemInterval), 1)
	}

	return &Client{
		baseURL:      baseURL,
		http:         httpClient,
		log:          logger,
		limiter:      limiter,
		batchLimiter: batchLimiter,
	}
}

// get performs one paced GET round-trip and decodes the JSON body into
// out. Transport, status and decode failures are logged here once, so
// callers that discard the returned error still leave an operator-visible
// diagnostic behind.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("dexscreener request failed")
		return err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: res.StatusCode, Body: body}
		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": res.StatusCode,
		}).Warn("dexscreener returned non-success status")
		return httpErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		err = fmt.Errorf("failed to decode dexscreener response: %w", err)
		c.log.WithError(err).WithField("path", path).Warn("dexscreener response not decodable")
		return err
	}
	return nil
}

// getPairs fetches a pair-bearing endpoint and unwraps its envelope.
// An absent or null pairs array yields an empty result, not an error.
func (c *Client) getPairs(ctx context.Context, path string) ([]Pair, error) {
	var res pairsResponse
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Pairs, nil
}
