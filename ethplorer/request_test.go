package ethplorer

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/ethplorer/flex"
)

func TestAPIKeyParam(t *testing.T) {
	assert.Equal(t, Param{Key: "apiKey", Value: "freekey"}, APIKeyParam(""))
	assert.Equal(t, Param{Key: "apiKey", Value: "test"}, APIKeyParam("test"))
}

func TestBuilders(t *testing.T) {
	free := Param{Key: "apiKey", Value: FreeKey}

	tests := []struct {
		name     string
		req      Request
		segments []string
		params   []Param
		url      string
	}{
		{
			name:     "address info with token",
			req:      AddressInfoRequest("", "0x0", AddressInfoParams{Token: "token", ShowETHTotals: false}),
			segments: []string{"getAddressInfo", "0x0"},
			params:   []Param{free, {"token", "token"}, {"showETHTotals", "false"}},
			url:      "https://api.ethplorer.io/getAddressInfo/0x0",
		},
		{
			name:     "address info without token",
			req:      AddressInfoRequest("", "0xabc", AddressInfoParams{}),
			segments: []string{"getAddressInfo", "0xabc"},
			params:   []Param{free, {"showETHTotals", "false"}},
			url:      "https://api.ethplorer.io/getAddressInfo/0xabc",
		},
		{
			name:     "token info",
			req:      TokenInfoRequest("", "0x0"),
			segments: []string{"getTokenInfo", "0x0"},
			params:   []Param{free},
			url:      "https://api.ethplorer.io/getTokenInfo/0x0",
		},
		{
			name:     "top token holders",
			req:      TopTokenHoldersRequest("", "0x0", 100),
			segments: []string{"getTopTokenHolders", "0x0"},
			params:   []Param{free, {"limit", "100"}},
			url:      "https://api.ethplorer.io/getTopTokenHolders/0x0",
		},
		{
			name:     "last block",
			req:      LastBlockRequest(""),
			segments: []string{"getLastBlock"},
			params:   []Param{free},
			url:      "https://api.ethplorer.io/getLastBlock",
		},
		{
			name:     "tokens new",
			req:      TokensNewRequest(""),
			segments: []string{"getTokensNew"},
			params:   []Param{free},
			url:      "https://api.ethplorer.io/getTokensNew",
		},
		{
			name:     "token history grouped",
			req:      TokenHistoryGroupedRequest("", "0x0", 50),
			segments: []string{"getTokenHistoryGrouped", "0x0"},
			params:   []Param{free, {"period", "50"}},
			url:      "https://api.ethplorer.io/getTokenHistoryGrouped/0x0",
		},
		{
			name:     "token history",
			req:      TokenHistoryRequest("", "0x0", TokenHistoryParams{Type: "type", Limit: 50}),
			segments: []string{"getTokenHistory", "0x0"},
			params:   []Param{free, {"limit", "50"}, {"type", "type"}},
			url:      "https://api.ethplorer.io/getTokenHistory/0x0",
		},
		{
			name:     "token history with timestamp",
			req:      TokenHistoryRequest("key", "0x0", TokenHistoryParams{Type: "transfer", Limit: 5, Timestamp: 1609459200}),
			segments: []string{"getTokenHistory", "0x0"},
			params:   []Param{{"apiKey", "key"}, {"limit", "5"}, {"type", "transfer"}, {"timestamp", "1609459200"}},
			url:      "https://api.ethplorer.io/getTokenHistory/0x0",
		},
		{
			name:     "address history",
			req:      AddressHistoryRequest("", "0x0", AddressHistoryParams{Type: "type", Limit: 50, Token: "token"}),
			segments: []string{"getAddressHistory", "0x0"},
			params:   []Param{free, {"limit", "50"}, {"type", "type"}, {"token", "token"}},
			url:      "https://api.ethplorer.io/getAddressHistory/0x0",
		},
		{
			name:     "address transactions",
			req:      AddressTransactionsRequest("", "0x0", AddressTransactionsParams{Limit: 50}),
			segments: []string{"getAddressTransactions", "0x0"},
			params:   []Param{free, {"limit", "50"}, {"showZeroValues", "false"}},
			url:      "https://api.ethplorer.io/getAddressTransactions/0x0",
		},
		{
			name:     "address transactions with timestamp",
			req:      AddressTransactionsRequest("", "0x0", AddressTransactionsParams{Timestamp: 42, ShowZeroValues: true}),
			segments: []string{"getAddressTransactions", "0x0"},
			params:   []Param{free, {"timestamp", "42"}, {"showZeroValues", "true"}},
			url:      "https://api.ethplorer.io/getAddressTransactions/0x0",
		},
		{
			name:     "top tokens",
			req:      TopTokensRequest(""),
			segments: []string{"getTopTokens"},
			params:   []Param{free},
			url:      "https://api.ethplorer.io/getTopTokens",
		},
		{
			name:     "top",
			req:      TopRequest("", TopParams{Limit: 50, Criteria: "crit"}),
			segments: []string{"getTop"},
			params:   []Param{free, {"limit", "50"}, {"criteria", "crit"}},
			url:      "https://api.ethplorer.io/getTop",
		},
		{
			name:     "token price history grouped",
			req:      TokenPriceHistoryGroupedRequest("", "0x0", 50),
			segments: []string{"getTokenPriceHistoryGrouped", "0x0"},
			params:   []Param{free, {"period", "50"}},
			url:      "https://api.ethplorer.io/getTokenPriceHistoryGrouped/0x0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DefaultBaseURL, tt.req.Base)
			assert.Equal(t, tt.segments, tt.req.Segments)
			assert.Equal(t, tt.params, tt.req.Params)
			assert.Equal(t, tt.url, tt.req.String())
		})
	}
}

func TestLimitClamp(t *testing.T) {
	tests := []struct {
		limit   uint64
		want    string
		present bool
	}{
		{limit: 0, present: false},
		{limit: 1, want: "1", present: true},
		{limit: 999, want: "999", present: true},
		{limit: 1000, want: "1000", present: true},
		{limit: 1001, want: "1000", present: true},
		{limit: ^uint64(0), want: "1000", present: true},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.limit, 10), func(t *testing.T) {
			requests := []Request{
				TopTokenHoldersRequest("", "0x0", tt.limit),
				TokenHistoryRequest("", "0x0", TokenHistoryParams{Limit: tt.limit}),
				AddressHistoryRequest("", "0x0", AddressHistoryParams{Limit: tt.limit}),
				AddressTransactionsRequest("", "0x0", AddressTransactionsParams{Limit: tt.limit}),
				TopRequest("", TopParams{Limit: tt.limit}),
			}

			for _, req := range requests {
				got, ok := req.Param("limit")
				assert.Equal(t, tt.present, ok, req.Endpoint())
				assert.Equal(t, tt.want, got, req.Endpoint())
			}
		})
	}
}

func TestPeriodClamp(t *testing.T) {
	tests := []struct {
		period  uint64
		want    string
		present bool
	}{
		{period: 0, present: false},
		{period: 1, want: "1", present: true},
		{period: 90, want: "90", present: true},
		{period: 91, want: "90", present: true},
		{period: 5000, want: "90", present: true},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.period, 10), func(t *testing.T) {
			for _, req := range []Request{
				TokenHistoryGroupedRequest("", "0x0", tt.period),
				TokenPriceHistoryGroupedRequest("", "0x0", tt.period),
			} {
				got, ok := req.Param("period")
				assert.Equal(t, tt.present, ok, req.Endpoint())
				assert.Equal(t, tt.want, got, req.Endpoint())
			}
		})
	}
}

func TestOptionalStringsOmittedWhenEmpty(t *testing.T) {
	empty := []Request{
		AddressInfoRequest("", "0x0", AddressInfoParams{}),
		TokenHistoryRequest("", "0x0", TokenHistoryParams{}),
		AddressHistoryRequest("", "0x0", AddressHistoryParams{}),
		TopRequest("", TopParams{}),
	}
	for _, req := range empty {
		for _, key := range []string{"token", "type", "criteria", "limit", "timestamp"} {
			_, ok := req.Param(key)
			assert.False(t, ok, "%s should omit %s", req.Endpoint(), key)
		}
		for _, p := range req.Params {
			assert.NotEmpty(t, p.Value, "%s emitted empty %s", req.Endpoint(), p.Key)
		}
	}

	req := AddressHistoryRequest("", "0x0", AddressHistoryParams{Type: "approve", Token: "0xdac"})
	typ, _ := req.Param("type")
	token, _ := req.Param("token")
	assert.Equal(t, "approve", typ)
	assert.Equal(t, "0xdac", token)
}

func TestBuilderIsDeterministic(t *testing.T) {
	params := AddressHistoryParams{Limit: 2000, Type: "transfer", Timestamp: flex.Timestamp(1609459200), Token: "0xdac"}

	first := AddressHistoryRequest("key", "0xabc", params)
	second := AddressHistoryRequest("key", "0xabc", params)

	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, EncodeQuery(first.Params), EncodeQuery(second.Params))
	assert.Equal(t, "apiKey=key&limit=1000&type=transfer&timestamp=1609459200&token=0xdac", EncodeQuery(first.Params))
}

func TestEmptyPathArgumentIsDropped(t *testing.T) {
	req := TokenInfoRequest("", "")
	assert.Equal(t, []string{"getTokenInfo"}, req.Segments)
	assert.Equal(t, "https://api.ethplorer.io/getTokenInfo", req.String())
}

func TestWithBase(t *testing.T) {
	req := TokenInfoRequest("", "0x0")
	moved := req.WithBase("http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080/getTokenInfo/0x0", moved.String())
	assert.Equal(t, "https://api.ethplorer.io/getTokenInfo/0x0", req.String(), "original must not change")

	moved.Segments[1] = "0xchanged"
	assert.Equal(t, "0x0", req.Segments[1])

	assert.Equal(t, DefaultBaseURL, req.WithBase("").Base)
}

func TestRedacted(t *testing.T) {
	req := TopRequest("secret", TopParams{Criteria: "cap"})
	assert.Equal(t, "https://api.ethplorer.io/getTop?apiKey=%2A%2A%2A&criteria=cap", req.Redacted())

	free := TopTokensRequest("")
	assert.Equal(t, "https://api.ethplorer.io/getTopTokens?apiKey=freekey", free.Redacted())
}

func TestEncodeQuery(t *testing.T) {
	assert.Equal(t, "", EncodeQuery(nil))
	assert.Equal(t, "b=2&a=1", EncodeQuery([]Param{{"b", "2"}, {"a", "1"}}))
	assert.Equal(t, "q=a+b%26c", EncodeQuery([]Param{{"q", "a b&c"}}))
}

func TestEndpoints(t *testing.T) {
	endpoints := Endpoints()
	require.Len(t, endpoints, 12)

	seen := make(map[Endpoint]bool)
	for _, e := range endpoints {
		assert.False(t, seen[e], "duplicate endpoint %s", e)
		seen[e] = true
		assert.Equal(t, string(e), e.Route())
	}
}
