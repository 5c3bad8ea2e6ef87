package ethplorer

import (
	"bytes"
	"encoding/json"
	"errors"

	simplejson "github.com/bitly/go-simplejson"
)

// DecodeAddressInfo decodes a getAddressInfo response body
func DecodeAddressInfo(body []byte) (*AddressInfo, error) {
	return decodeRecord[AddressInfo](EndpointAddressInfo, body)
}

// DecodeTokenInfo decodes a getTokenInfo response body
func DecodeTokenInfo(body []byte) (*TokenInfo, error) {
	return decodeRecord[TokenInfo](EndpointTokenInfo, body)
}

// DecodeTopTokenHolders decodes a getTopTokenHolders response body
func DecodeTopTokenHolders(body []byte) (*TopTokenHolders, error) {
	return decodeRecord[TopTokenHolders](EndpointTopTokenHolders, body)
}

// DecodeLastBlock decodes a getLastBlock response body
func DecodeLastBlock(body []byte) (*LastBlock, error) {
	return decodeRecord[LastBlock](EndpointLastBlock, body)
}

// DecodeTokensNew decodes a getTokensNew response body, a bare array of tokens
func DecodeTokensNew(body []byte) ([]TokenInfo, error) {
	return decodeList[TokenInfo](EndpointTokensNew, body)
}

// DecodeTokenDailyTransactionCounts decodes a getTokenHistoryGrouped response body
func DecodeTokenDailyTransactionCounts(body []byte) (*TokenDailyTransactionCounts, error) {
	return decodeRecord[TokenDailyTransactionCounts](EndpointTokenHistoryGrouped, body)
}

// DecodeTokenHistory decodes a getTokenHistory response body
func DecodeTokenHistory(body []byte) (*TokenHistory, error) {
	return decodeRecord[TokenHistory](EndpointTokenHistory, body)
}

// DecodeAddressHistory decodes a getAddressHistory response body
func DecodeAddressHistory(body []byte) (*TokenHistory, error) {
	return decodeRecord[TokenHistory](EndpointAddressHistory, body)
}

// DecodeAddressTransactions decodes a getAddressTransactions response body, a
// bare array of transactions
func DecodeAddressTransactions(body []byte) ([]AddressTransaction, error) {
	return decodeList[AddressTransaction](EndpointAddressTransactions, body)
}

// DecodeTopTokens decodes a getTopTokens response body
func DecodeTopTokens(body []byte) (*TopTokens, error) {
	return decodeRecord[TopTokens](EndpointTopTokens, body)
}

// DecodeTop decodes a getTop response body
func DecodeTop(body []byte) (*TopTokens, error) {
	return decodeRecord[TopTokens](EndpointTop, body)
}

// DecodeTokenDailyPriceHistory decodes a getTokenPriceHistoryGrouped response body
func DecodeTokenDailyPriceHistory(body []byte) (*TokenDailyPriceHistory, error) {
	return decodeRecord[TokenDailyPriceHistory](EndpointTokenPriceHistoryGrouped, body)
}

// decodeRecord returns either a fully decoded record or an error, never a
// partially filled one.
var errNullBody = errors.New("response body is null")

func decodeRecord[T any](endpoint Endpoint, body []byte) (*T, error) {
	if apiErr := parseAPIError(0, body); apiErr != nil {
		return nil, apiErr
	}
	if isNull(body) {
		return nil, &DecodeError{Endpoint: endpoint, Err: errNullBody}
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return &record, nil
}

func decodeList[T any](endpoint Endpoint, body []byte) ([]T, error) {
	if apiErr := parseAPIError(0, body); apiErr != nil {
		return nil, apiErr
	}
	if isNull(body) {
		return nil, &DecodeError{Endpoint: endpoint, Err: errNullBody}
	}

	records := []T{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return records, nil
}

// isNull reports a body that is the JSON literal null, which json.Unmarshal
// would otherwise accept as a zero record.
func isNull(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}

// parseAPIError probes body for the {"error": {"code", "message"}} envelope,
// which the API also sends with a 200 status. It returns nil when the body is
// not an error envelope. Only an object or a non-empty string under "error"
// counts; false, null and the like are ordinary fields.
func parseAPIError(statusCode int, body []byte) *APIError {
	js, err := simplejson.NewJson(body)
	if err != nil {
		return nil
	}

	envelope, ok := js.CheckGet("error")
	if !ok {
		return nil
	}
	if _, err := envelope.Map(); err != nil {
		if message, err := envelope.String(); err != nil || message == "" {
			return nil
		}
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Code:       envelope.Get("code").MustInt(),
		Message:    envelope.Get("message").MustString(),
		Body:       string(body),
	}
	if apiErr.Message == "" {
		// Older responses carry the message as a bare string
		apiErr.Message = envelope.MustString("unknown error")
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = 200
	}
	return apiErr
}
