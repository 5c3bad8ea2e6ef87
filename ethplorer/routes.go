package ethplorer

const (
	// DefaultBaseURL is the public Ethplorer API host
	DefaultBaseURL = "https://api.ethplorer.io"

	// FreeKey is the published key used when the caller supplies none
	FreeKey = "freekey"

	// MaxLimit bounds the limit parameter of list endpoints
	MaxLimit uint64 = 1000

	// MaxPeriod bounds the period parameter, in days, of grouped history endpoints
	MaxPeriod uint64 = 90
)

// Endpoint identifies one API operation. Its value is the route segment.
type Endpoint string

const (
	EndpointAddressInfo              Endpoint = "getAddressInfo"
	EndpointTokenInfo                Endpoint = "getTokenInfo"
	EndpointTopTokenHolders          Endpoint = "getTopTokenHolders"
	EndpointLastBlock                Endpoint = "getLastBlock"
	EndpointTokensNew                Endpoint = "getTokensNew"
	EndpointTokenHistoryGrouped      Endpoint = "getTokenHistoryGrouped"
	EndpointTokenHistory             Endpoint = "getTokenHistory"
	EndpointAddressHistory           Endpoint = "getAddressHistory"
	EndpointAddressTransactions      Endpoint = "getAddressTransactions"
	EndpointTopTokens                Endpoint = "getTopTokens"
	EndpointTop                      Endpoint = "getTop"
	EndpointTokenPriceHistoryGrouped Endpoint = "getTokenPriceHistoryGrouped"
)

// Endpoints lists every supported endpoint in a stable order.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointAddressInfo,
		EndpointTokenInfo,
		EndpointTopTokenHolders,
		EndpointLastBlock,
		EndpointTokensNew,
		EndpointTokenHistoryGrouped,
		EndpointTokenHistory,
		EndpointAddressHistory,
		EndpointAddressTransactions,
		EndpointTopTokens,
		EndpointTop,
		EndpointTokenPriceHistoryGrouped,
	}
}

// Route returns the path segment for the endpoint
func (e Endpoint) Route() string {
	return string(e)
}

func (e Endpoint) String() string {
	return string(e)
}
