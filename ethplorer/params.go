package ethplorer

import "github.com/s0up4200/ethplorer/flex"

// Options structs declare their fields in wire order: parameters are emitted
// after apiKey in the order they appear here.

// AddressInfoParams are the options of getAddressInfo
type AddressInfoParams struct {
	// Token restricts the result to one token contract
	Token string
	// ShowETHTotals includes the aggregate ETH totalIn/totalOut
	ShowETHTotals bool
}

// TokenHistoryParams are the options of getTokenHistory
type TokenHistoryParams struct {
	Limit     uint64
	Type      string
	Timestamp flex.Timestamp
}

// AddressHistoryParams are the options of getAddressHistory
type AddressHistoryParams struct {
	Limit     uint64
	Type      string
	Timestamp flex.Timestamp
	Token     string
}

// AddressTransactionsParams are the options of getAddressTransactions
type AddressTransactionsParams struct {
	Limit          uint64
	Timestamp      flex.Timestamp
	ShowZeroValues bool
}

// TopParams are the options of getTop
type TopParams struct {
	Limit    uint64
	Criteria string
}

// AddressInfoRequest builds getAddressInfo/{address}.
func AddressInfoRequest(apiKey, address string, params AddressInfoParams) Request {
	return newRequest(EndpointAddressInfo, apiKey, address).
		text("token", params.Token).
		flag("showETHTotals", params.ShowETHTotals).
		build()
}

// TokenInfoRequest builds getTokenInfo/{address}.
func TokenInfoRequest(apiKey, address string) Request {
	return newRequest(EndpointTokenInfo, apiKey, address).build()
}

// TopTokenHoldersRequest builds getTopTokenHolders/{address}.
func TopTokenHoldersRequest(apiKey, address string, limit uint64) Request {
	return newRequest(EndpointTopTokenHolders, apiKey, address).
		clamped("limit", limit, MaxLimit).
		build()
}

// LastBlockRequest builds getLastBlock.
func LastBlockRequest(apiKey string) Request {
	return newRequest(EndpointLastBlock, apiKey).build()
}

// TokensNewRequest builds getTokensNew.
func TokensNewRequest(apiKey string) Request {
	return newRequest(EndpointTokensNew, apiKey).build()
}

// TokenHistoryGroupedRequest builds getTokenHistoryGrouped/{address}, the
// daily transaction counts of a token.
func TokenHistoryGroupedRequest(apiKey, address string, period uint64) Request {
	return newRequest(EndpointTokenHistoryGrouped, apiKey, address).
		clamped("period", period, MaxPeriod).
		build()
}

// TokenHistoryRequest builds getTokenHistory/{address}.
func TokenHistoryRequest(apiKey, address string, params TokenHistoryParams) Request {
	return newRequest(EndpointTokenHistory, apiKey, address).
		clamped("limit", params.Limit, MaxLimit).
		text("type", params.Type).
		timestamp("timestamp", params.Timestamp).
		build()
}

// AddressHistoryRequest builds getAddressHistory/{address}.
func AddressHistoryRequest(apiKey, address string, params AddressHistoryParams) Request {
	return newRequest(EndpointAddressHistory, apiKey, address).
		clamped("limit", params.Limit, MaxLimit).
		text("type", params.Type).
		timestamp("timestamp", params.Timestamp).
		text("token", params.Token).
		build()
}

// AddressTransactionsRequest builds getAddressTransactions/{address}.
func AddressTransactionsRequest(apiKey, address string, params AddressTransactionsParams) Request {
	return newRequest(EndpointAddressTransactions, apiKey, address).
		clamped("limit", params.Limit, MaxLimit).
		timestamp("timestamp", params.Timestamp).
		flag("showZeroValues", params.ShowZeroValues).
		build()
}

// TopTokensRequest builds getTopTokens.
func TopTokensRequest(apiKey string) Request {
	return newRequest(EndpointTopTokens, apiKey).build()
}

// TopRequest builds getTop.
func TopRequest(apiKey string, params TopParams) Request {
	return newRequest(EndpointTop, apiKey).
		clamped("limit", params.Limit, MaxLimit).
		text("criteria", params.Criteria).
		build()
}

// TokenPriceHistoryGroupedRequest builds getTokenPriceHistoryGrouped/{address}.
func TokenPriceHistoryGroupedRequest(apiKey, address string, period uint64) Request {
	return newRequest(EndpointTokenPriceHistoryGrouped, apiKey, address).
		clamped("period", period, MaxPeriod).
		build()
}
