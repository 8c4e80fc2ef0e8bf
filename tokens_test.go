package dexscreener

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainPair(chain, pool string, usd float64) Pair {
	return Pair{ChainID: chain, PairAddress: pool, Liquidity: &Liquidity{USD: usd}}
}

func TestGetPairByAddressPrefersRequestedChain(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{
			chainPair("ethereum", "eth-pool", 1_000_000),
			chainPair("solana", "sol-pool-small", 100),
			chainPair("solana", "sol-pool-big", 5000),
		})
	}))

	pair, err := c.GetPairByAddress(context.Background(), "SOL", "tok")
	require.NoError(t, err)
	// The deeper ethereum pool must not win over the requested chain.
	assert.Equal(t, "sol-pool-big", pair.PairAddress)
}

func TestGetPairByAddressFallsBackAcrossChains(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{
			chainPair("ethereum", "eth-pool", 100),
			chainPair("bsc", "bsc-pool", 900),
		})
	}))

	pair, err := c.GetPairByAddress(context.Background(), "SOL", "tok")
	require.NoError(t, err)
	assert.Equal(t, "bsc-pool", pair.PairAddress)
}

func TestGetPairByAddressNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, nil)
	}))

	_, err := c.GetPairByAddress(context.Background(), "sol", "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPairsByAddressesEmptyInputSkipsNetwork(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writePairs(t, w, nil)
	}))

	result, err := c.GetPairsByAddresses(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, calls)
}

func TestGetPairsByAddressesChunksAndSurvivesFailure(t *testing.T) {
	addresses := make([]string, 65)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("addr%02d", i)
	}

	var chunkSizes []int
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		raw := strings.TrimPrefix(r.URL.Path, "/latest/dex/tokens/")
		chunk := strings.Split(raw, ",")
		chunkSizes = append(chunkSizes, len(chunk))

		if calls == 2 {
			http.Error(w, "bad gateway", http.StatusBadGateway)
			return
		}
		var pairs []Pair
		for _, a := range chunk {
			pairs = append(pairs, Pair{
				ChainID:     "solana",
				PairAddress: "pool-" + a,
				BaseToken:   Token{Address: a},
				Liquidity:   &Liquidity{USD: 5},
			})
		}
		writePairs(t, w, pairs)
	}))

	result, err := c.GetPairsByAddresses(context.Background(), addresses, "")
	require.NoError(t, err)

	assert.Equal(t, []int{30, 30, 5}, chunkSizes)

	// Chunks 1 and 3 contribute despite the chunk 2 failure.
	assert.Len(t, result, 35)
	assert.Contains(t, result, "addr00")
	assert.Contains(t, result, "addr29")
	assert.Contains(t, result, "addr60")
	assert.Contains(t, result, "addr64")
	assert.NotContains(t, result, "addr30")
	assert.NotContains(t, result, "addr59")
}

func TestGetPairsByAddressesPicksBestPerToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{
			{ChainID: "solana", PairAddress: "shallow", BaseToken: Token{Address: "tok1"}, Liquidity: &Liquidity{USD: 10}},
			{ChainID: "solana", PairAddress: "deep", BaseToken: Token{Address: "tok1"}, Liquidity: &Liquidity{USD: 99}},
			{ChainID: "solana", PairAddress: "only", BaseToken: Token{Address: "tok2"}, Liquidity: &Liquidity{USD: 1}},
		})
	}))

	result, err := c.GetPairsByAddresses(context.Background(), []string{"tok1", "tok2"}, "")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "deep", result["tok1"].PairAddress)
	assert.Equal(t, "only", result["tok2"].PairAddress)
}

func TestGetPairsByAddressesChainFilter(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{
			{ChainID: "ethereum", PairAddress: "eth-pool", BaseToken: Token{Address: "tok1"}, Liquidity: &Liquidity{USD: 1000}},
			{ChainID: "solana", PairAddress: "sol-pool", BaseToken: Token{Address: "tok1"}, Liquidity: &Liquidity{USD: 10}},
		})
	}))

	result, err := c.GetPairsByAddresses(context.Background(), []string{"tok1"}, "SOL")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "sol-pool", result["tok1"].PairAddress)
}

func TestGetLiquidityPoolAddress(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{chainPair("solana", "the-pool", 777)})
	}))

	addr, err := c.GetLiquidityPoolAddress(context.Background(), "sol", "tok")
	require.NoError(t, err)
	assert.Equal(t, "the-pool", addr)
}

func TestGetAllLiquidityPoolAddressesDedupsInOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePairs(t, w, []Pair{
			chainPair("solana", "pool-a", 1),
			chainPair("solana", "pool-b", 2),
			chainPair("solana", "pool-a", 3), // non-adjacent duplicate
			chainPair("ethereum", "pool-c", 4),
		})
	}))

	addrs, err := c.GetAllLiquidityPoolAddresses(context.Background(), "SOL", "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"pool-a", "pool-b"}, addrs)
}

func TestGetAllLiquidityPoolAddressesFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))

	addrs, err := c.GetAllLiquidityPoolAddresses(context.Background(), "sol", "tok")
	require.Error(t, err)
	assert.Empty(t, addrs)
}
