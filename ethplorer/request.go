package ethplorer

import (
	"strconv"
	"strings"

	"github.com/s0up4200/ethplorer/flex"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Request describes one outbound call before transport: where it goes and
// which query parameters it carries, in wire order. A Request only ever holds
// parameters that are present; optional parameters the caller did not ask for
// are never emitted, not even as empty values.
type Request struct {
	Base     string
	Segments []string
	Params   []Param
}

// String renders the base address and path segments joined by "/". The query
// is carried separately in Params and is never embedded in the path.
func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString(r.Base)
	for _, segment := range r.Segments {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	return sb.String()
}

// Endpoint returns the endpoint the request targets
func (r Request) Endpoint() Endpoint {
	if len(r.Segments) == 0 {
		return ""
	}
	return Endpoint(r.Segments[0])
}

// Param returns the value of the named parameter and whether it is present.
func (r Request) Param(key string) (string, bool) {
	for _, p := range r.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// WithBase returns a copy of the request aimed at a different base address.
func (r Request) WithBase(base string) Request {
	base = strings.TrimRight(base, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	return Request{
		Base:     base,
		Segments: append([]string(nil), r.Segments...),
		Params:   append([]Param(nil), r.Params...),
	}
}

// Redacted renders the request with its query, masking the API key, for logs
// and dry runs.
func (r Request) Redacted() string {
	params := make([]Param, len(r.Params))
	for i, p := range r.Params {
		if p.Key == "apiKey" && p.Value != FreeKey {
			p.Value = "***"
		}
		params[i] = p
	}

	if q := EncodeQuery(params); q != "" {
		return r.String() + "?" + q
	}
	return r.String()
}

// APIKeyParam returns the apiKey parameter, substituting FreeKey for an empty key.
func APIKeyParam(apiKey string) Param {
	if apiKey == "" {
		apiKey = FreeKey
	}
	return Param{Key: "apiKey", Value: apiKey}
}

// newRequest starts a request for endpoint with the given path arguments.
// Empty path arguments are dropped so the rendered path never ends in "/".
func newRequest(endpoint Endpoint, apiKey string, pathArgs ...string) *requestBuilder {
	segments := make([]string, 0, 1+len(pathArgs))
	segments = append(segments, endpoint.Route())
	for _, arg := range pathArgs {
		if arg != "" {
			segments = append(segments, arg)
		}
	}

	return &requestBuilder{
		req: Request{
			Base:     DefaultBaseURL,
			Segments: segments,
			Params:   []Param{APIKeyParam(apiKey)},
		},
	}
}

// requestBuilder appends parameters in call order, skipping the ones the
// caller left unset.
type requestBuilder struct {
	req Request
}

func (b *requestBuilder) text(key, value string) *requestBuilder {
	if value != "" {
		b.req.Params = append(b.req.Params, Param{Key: key, Value: value})
	}
	return b
}

// clamped emits value capped at upper. Zero means "not requested".
func (b *requestBuilder) clamped(key string, value, upper uint64) *requestBuilder {
	if value != 0 {
		b.req.Params = append(b.req.Params, Param{Key: key, Value: strconv.FormatUint(min(value, upper), 10)})
	}
	return b
}

func (b *requestBuilder) timestamp(key string, ts flex.Timestamp) *requestBuilder {
	if !ts.IsZero() {
		b.req.Params = append(b.req.Params, Param{Key: key, Value: strconv.FormatInt(ts.Unix(), 10)})
	}
	return b
}

func (b *requestBuilder) flag(key string, value bool) *requestBuilder {
	b.req.Params = append(b.req.Params, Param{Key: key, Value: strconv.FormatBool(value)})
	return b
}

func (b *requestBuilder) build() Request {
	return b.req
}
