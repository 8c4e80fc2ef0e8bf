package dexscreener

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the upstream answered successfully but
// produced no usable pair for the request.
var ErrNotFound = errors.New("no matching pair found")

// ErrSymbolMismatch is returned by GetMetrics when the fuzzy search kept
// resolving to a different base-token symbol than the one requested, even
// after the bare-ticker retry.
var ErrSymbolMismatch = errors.New("search result symbol does not match requested ticker")

// HTTPError reports a non-success status from the upstream API.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	b := strings.TrimSpace(string(e.Body))
	if b == "" {
		return fmt.Sprintf("dexscreener http %d", e.StatusCode)
	}
	return fmt.Sprintf("dexscreener http %d: %s", e.StatusCode, b)
}
