package ethplorer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client wraps the Ethplorer API. It holds only immutable configuration, so
// one Client may serve concurrent calls.
type Client struct {
	apiKey  string
	baseURL string
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewClient creates a new Ethplorer client. An empty apiKey uses FreeKey.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(o.baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	fetcher := o.fetcher
	if fetcher == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		fetcher = NewHTTPFetcher(httpClient, o.userAgent, logger)
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		fetcher: fetcher,
		logger:  logger,
	}, nil
}

// BaseURL returns the API host the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends req through the fetcher, exactly once.
func (c *Client) do(ctx context.Context, req Request) ([]byte, error) {
	req = req.WithBase(c.baseURL)
	logger := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("endpoint", req.Endpoint().String()).
		Logger()

	logger.Debug().
		Str("url", req.String()).
		Int("params", len(req.Params)).
		Msg("Making Ethplorer API request")

	start := time.Now()
	body, err := c.fetcher.Fetch(ctx, req.String(), req.Params)
	if err != nil {
		logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("Ethplorer API request failed")
		return nil, fmt.Errorf("%s: %w", req.Endpoint(), err)
	}

	logger.Trace().
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Received Ethplorer response")

	return body, nil
}

func requireAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrEmptyAddress
	}
	return address, nil
}

// GetAddressInfo retrieves the balances and contract details of an address
func (c *Client) GetAddressInfo(ctx context.Context, address string, params AddressInfoParams) (*AddressInfo, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, AddressInfoRequest(c.apiKey, address, params))
	if err != nil {
		return nil, err
	}
	return DecodeAddressInfo(body)
}

// GetTokenInfo retrieves the metadata of a token contract
func (c *Client) GetTokenInfo(ctx context.Context, address string) (*TokenInfo, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, TokenInfoRequest(c.apiKey, address))
	if err != nil {
		return nil, err
	}
	return DecodeTokenInfo(body)
}

// GetTopTokenHolders retrieves the largest holders of a token
func (c *Client) GetTopTokenHolders(ctx context.Context, address string, limit uint64) (*TopTokenHolders, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, TopTokenHoldersRequest(c.apiKey, address, limit))
	if err != nil {
		return nil, err
	}
	return DecodeTopTokenHolders(body)
}

// GetLastBlock retrieves the last block the API has indexed
func (c *Client) GetLastBlock(ctx context.Context) (*LastBlock, error) {
	body, err := c.do(ctx, LastBlockRequest(c.apiKey))
	if err != nil {
		return nil, err
	}
	return DecodeLastBlock(body)
}

// GetTokensNew retrieves recently added tokens
func (c *Client) GetTokensNew(ctx context.Context) ([]TokenInfo, error) {
	body, err := c.do(ctx, TokensNewRequest(c.apiKey))
	if err != nil {
		return nil, err
	}
	return DecodeTokensNew(body)
}

// GetTokenDailyTransactionCounts retrieves per-day operation counts of a token
func (c *Client) GetTokenDailyTransactionCounts(ctx context.Context, address string, period uint64) (*TokenDailyTransactionCounts, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, TokenHistoryGroupedRequest(c.apiKey, address, period))
	if err != nil {
		return nil, err
	}
	return DecodeTokenDailyTransactionCounts(body)
}

// GetTokenHistory retrieves the latest operations of a token
func (c *Client) GetTokenHistory(ctx context.Context, address string, params TokenHistoryParams) (*TokenHistory, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, TokenHistoryRequest(c.apiKey, address, params))
	if err != nil {
		return nil, err
	}
	return DecodeTokenHistory(body)
}

// GetAddressHistory retrieves the latest token operations of an address
func (c *Client) GetAddressHistory(ctx context.Context, address string, params AddressHistoryParams) (*TokenHistory, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, AddressHistoryRequest(c.apiKey, address, params))
	if err != nil {
		return nil, err
	}
	return DecodeAddressHistory(body)
}

// GetAddressTransactions retrieves the latest ETH transactions of an address
func (c *Client) GetAddressTransactions(ctx context.Context, address string, params AddressTransactionsParams) ([]AddressTransaction, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, AddressTransactionsRequest(c.apiKey, address, params))
	if err != nil {
		return nil, err
	}
	return DecodeAddressTransactions(body)
}

// GetTopTokens retrieves the most active tokens
func (c *Client) GetTopTokens(ctx context.Context) (*TopTokens, error) {
	body, err := c.do(ctx, TopTokensRequest(c.apiKey))
	if err != nil {
		return nil, err
	}
	return DecodeTopTokens(body)
}

// GetTop retrieves top tokens ranked by params.Criteria
func (c *Client) GetTop(ctx context.Context, params TopParams) (*TopTokens, error) {
	body, err := c.do(ctx, TopRequest(c.apiKey, params))
	if err != nil {
		return nil, err
	}
	return DecodeTop(body)
}

// GetTokenDailyPriceHistory retrieves grouped daily prices and counts of a token
func (c *Client) GetTokenDailyPriceHistory(ctx context.Context, address string, period uint64) (*TokenDailyPriceHistory, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, TokenPriceHistoryGroupedRequest(c.apiKey, address, period))
	if err != nil {
		return nil, err
	}
	return DecodeTokenDailyPriceHistory(body)
}
