package ethplorer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchAddressInfo(t *testing.T) {
	var mu sync.Mutex
	fetched := make(map[string]int)

	fetcher := FetcherFunc(func(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
		address := rawURL[strings.LastIndex(rawURL, "/")+1:]

		mu.Lock()
		fetched[address]++
		mu.Unlock()

		if address == "0xbad" {
			return nil, &APIError{StatusCode: 200, Code: 104, Message: "Invalid address format"}
		}
		return []byte(`{"address":"` + address + `","ETH":{"balance":1}}`), nil
	})

	client, err := NewClient("", zerolog.Nop(), WithFetcher(fetcher))
	require.NoError(t, err)

	result := client.BatchAddressInfo(context.Background(),
		[]string{"0x2", "0xbad", " 0x1 ", "0x2", "", "0x3"},
		AddressInfoParams{}, 2)

	assert.Equal(t, 4, result.Requested)
	require.Len(t, result.Successful, 3)
	assert.Equal(t, "0x1", result.Successful["0x1"].Address)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "0xbad", result.Failed[0].Address)
	assert.True(t, errors.Is(result.Failed[0], ErrNotFound))

	for address, n := range fetched {
		assert.Equal(t, 1, n, "address %s fetched more than once", address)
	}
}

func TestBatchAddressInfoRespectsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32

	fetcher := FetcherFunc(func(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return []byte(`{}`), nil
	})

	client, err := NewClient("", zerolog.Nop(), WithFetcher(fetcher))
	require.NoError(t, err)

	addresses := make([]string, 20)
	for i := range addresses {
		addresses[i] = "0x" + strings.Repeat("a", i+1)
	}

	result := client.BatchAddressInfo(context.Background(), addresses, AddressInfoParams{}, 3)
	assert.Len(t, result.Successful, 20)
	assert.Empty(t, result.Failed)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestBatchAddressInfoFailuresSorted(t *testing.T) {
	fetcher := FetcherFunc(func(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
		return nil, errors.New("boom")
	})

	client, err := NewClient("", zerolog.Nop(), WithFetcher(fetcher))
	require.NoError(t, err)

	result := client.BatchAddressInfo(context.Background(), []string{"0xc", "0xa", "0xb"}, AddressInfoParams{}, 0)
	require.Len(t, result.Failed, 3)
	assert.Equal(t, "0xa", result.Failed[0].Address)
	assert.Equal(t, "0xb", result.Failed[1].Address)
	assert.Equal(t, "0xc", result.Failed[2].Address)
	assert.Contains(t, result.Failed[0].Error(), "failed to get address info for 0xa")
}

func TestBatchAddressInfoEmpty(t *testing.T) {
	client, err := NewClient("", zerolog.Nop(), WithFetcher(FetcherFunc(func(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
		t.Fatal("fetch should not be called")
		return nil, nil
	})))
	require.NoError(t, err)

	result := client.BatchAddressInfo(context.Background(), []string{"", "  "}, AddressInfoParams{}, 4)
	assert.Zero(t, result.Requested)
	assert.Empty(t, result.Successful)
	assert.Empty(t, result.Failed)
}
