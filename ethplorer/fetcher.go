package ethplorer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Fetcher performs the network call for a request. It receives the rendered
// path and the ordered query parameters and returns the full response body.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, query []Param) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, rawURL string, query []Param) ([]byte, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
	return f(ctx, rawURL, query)
}

// HTTPFetcher is the default Fetcher, a plain GET over net/http.
type HTTPFetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewHTTPFetcher creates a fetcher using httpClient
func NewHTTPFetcher(httpClient *http.Client, userAgent string, logger zerolog.Logger) *HTTPFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPFetcher{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Fetch performs a GET for rawURL with query encoded in the given order.
// Non-2xx responses are returned as *APIError, failures before a response as
// *TransportError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, query []Param) ([]byte, error) {
	target := rawURL
	if q := EncodeQuery(query); q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: stripURL(err)}
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, body)
		if apiErr == nil {
			apiErr = &APIError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				Body:       string(body),
			}
		}

		f.logger.Warn().
			Str("url", rawURL).
			Int("status", resp.StatusCode).
			Int("code", apiErr.Code).
			Msg("Ethplorer API returned an error")
		return nil, apiErr
	}

	return body, nil
}

// EncodeQuery percent-encodes params in their given order. url.Values is not
// used because it sorts keys.
func EncodeQuery(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// stripURL unwraps *url.Error, whose message embeds the full URL and with it
// the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
