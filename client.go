package playht

import (
	"net/http"
	"net/url"
	"os"
	"time"
)

// BaseURL is the Play.ht API base URL.
const BaseURL = "https://api.play.ht/api"

// v2Path is the v2 API URL path.
const v2Path = "/v2"

const (
	// UserIDHeader is the HTTP header carrying the Play.ht user id.
	UserIDHeader = "X-USER-ID"
	// ClientUserAgent identifies this client to the API.
	ClientUserAgent = "jeffersonwarrior/playht"

	// EnvSecretKey is the environment variable holding the API secret key.
	EnvSecretKey = "PLAYHT_SECRET_KEY"
	// EnvUserID is the environment variable holding the Play.ht user id.
	EnvUserID = "PLAYHT_USER_ID"
)

// Media types used across the API surface.
const (
	applicationJSON = "application/json"
	textPlain       = "text/plain"
	textEventStream = "text/event-stream"
	audioMpeg       = "audio/mpeg"
)

// Client is a Play.ht API client.
//
// The zero value is not usable; construct one with NewClient or ClientBuilder.
// A Client is immutable after construction and safe for concurrent use: every
// request clones the configured headers and the underlying http.Client pools
// connections across concurrent calls.
type Client struct {
	client *http.Client
	url    *url.URL
	header http.Header
}

// NewClient returns a client bound to the Play.ht v2 API with credentials
// read from the environment. Missing credentials are not an error: the
// resulting client is unauthenticated and the API will reject protected
// calls with 401/403.
func NewClient() *Client {
	c, err := NewClientBuilder().Build()
	if err != nil {
		// The default builder always carries a valid base URL.
		panic(err)
	}
	return c
}

// RemoteAddr returns the remote host address in host:port form.
func (c *Client) RemoteAddr() string {
	return c.url.Hostname() + ":443"
}

// URL returns the base URL requests are issued against.
func (c *Client) URL() string {
	return c.url.String()
}

// ClientBuilder accumulates client configuration and validates it at a
// single Build boundary. Methods are chainable; the first validation
// failure is recorded and returned by Build.
type ClientBuilder struct {
	client *http.Client
	url    *url.URL
	header http.Header
	err    error
}

// NewClientBuilder returns a builder preconfigured for the Play.ht v2 API.
//
// The builder starts with the v2 base URL, the client User-Agent and, when
// PLAYHT_SECRET_KEY and PLAYHT_USER_ID are present in the environment, the
// Authorization and X-USER-ID headers. This is the only place the client
// reads the process environment.
func NewClientBuilder() *ClientBuilder {
	header := make(http.Header)
	header.Set("User-Agent", ClientUserAgent)
	if key := os.Getenv(EnvSecretKey); key != "" {
		header.Set("Authorization", key)
	}
	if userID := os.Getenv(EnvUserID); userID != "" {
		header.Set(UserIDHeader, userID)
	}

	// BaseURL+v2Path is a constant known to parse.
	u, _ := url.Parse(BaseURL + v2Path)

	return &ClientBuilder{
		client: defaultHTTPClient(),
		url:    u,
		header: header,
	}
}

// Header sets a header on the client configuration. Names are
// case-insensitive and the last write for a given name wins. Invalid
// header names or values record a *HeaderError.
func (b *ClientBuilder) Header(name, value string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	if !validHeaderName(name) || !validHeaderValue(value) {
		b.err = &HeaderError{Name: name, Value: value}
		return b
	}
	b.header.Set(name, value)
	return b
}

// Path appends a path segment to the base URL. The concatenation must
// parse as an absolute URL; otherwise a *URLError is recorded.
func (b *ClientBuilder) Path(segment string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	if b.url == nil {
		b.err = &URLError{URL: segment}
		return b
	}
	raw := b.url.String() + segment
	u, err := url.Parse(raw)
	if err != nil {
		b.err = &URLError{URL: raw, Err: err}
		return b
	}
	if !u.IsAbs() {
		b.err = &URLError{URL: raw}
		return b
	}
	b.url = u
	return b
}

// BaseURL replaces the base URL entirely. The URL must be absolute.
func (b *ClientBuilder) BaseURL(raw string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	u, err := url.Parse(raw)
	if err != nil {
		b.err = &URLError{URL: raw, Err: err}
		return b
	}
	if !u.IsAbs() {
		b.err = &URLError{URL: raw}
		return b
	}
	b.url = u
	return b
}

// HTTPClient replaces the underlying HTTP client. Use this to control
// transport-level policy such as timeouts or proxies.
func (b *ClientBuilder) HTTPClient(hc *http.Client) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client = hc
	return b
}

// Build finalizes the configuration and returns an immutable Client.
// It returns the first validation error recorded by the chained methods,
// or a *ConfigError if no base URL was ever established.
func (b *ClientBuilder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.url == nil {
		return nil, &ConfigError{Reason: "endpoint not set"}
	}
	return &Client{
		client: b.client,
		url:    b.url,
		header: b.header.Clone(),
	}, nil
}

// defaultHTTPClient returns an HTTP client with a connection-pooled
// transport. No client-level timeout is set: streaming responses are
// unbounded and timeout policy belongs to the caller.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// validHeaderName reports whether s is a valid HTTP header field name
// (RFC 7230 token).
func validHeaderName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// validHeaderValue reports whether s is a valid HTTP header field value:
// visible ASCII, space, horizontal tab and obs-text. Control characters
// are rejected.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
