// Package ethplorer provides a client for the Ethplorer token and address API.
//
// Every endpoint is split into three independent steps:
//
//   - a builder (AddressInfoRequest, TokenHistoryRequest, ...) that turns an
//     API key, path arguments and an options struct into a Request;
//   - a Fetcher that performs the GET and returns the raw body;
//   - a decoder (DecodeAddressInfo, DecodeTokenHistory, ...) that turns the
//     body into a typed record.
//
// Client wires the three together. Builders and decoders are pure functions
// and may be used on their own, for example with a custom transport.
//
// # Request rules
//
// An empty API key is replaced by FreeKey. apiKey is always the first query
// parameter; the rest follow the options struct field order. Empty strings
// and zero numbers or timestamps mean "not requested" and are omitted. limit
// is clamped to MaxLimit and period to MaxPeriod. Booleans are always sent.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := ethplorer.NewClient("", logger, ethplorer.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	info, err := client.GetTokenInfo(ctx, "0xdac17f958d2ee523a2206206994597c13d831ec7")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(info.Symbol, info.Decimals)
//
// # Error Handling
//
// Leaf values that fail to parse are decoded as zero and never fail a call.
// Calls fail with one of:
//
//   - *TransportError: the request produced no response
//   - *APIError: a non-2xx status or an {"error": ...} envelope
//   - *DecodeError: the body does not have the endpoint's shape
//   - ErrEmptyAddress: a required address argument was blank
//
// APIError matches ErrNotFound and ErrUnauthorized with errors.Is.
package ethplorer
