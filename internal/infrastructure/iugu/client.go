package iugu

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"iugu_gateway/internal/domain/entities"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.iugu.com/v1/"
	DefaultTimeout = 60 * time.Second
)

var ErrMissingAPIToken = errors.New("missing IUGU_API_TOKEN")

// RawResponse is an HTTP answer from the billing API, whatever its status.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *RawResponse) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Client is a stateless request/response wrapper around the billing API.
//
// Every call is authenticated with Basic auth built from the API token and
// bounded by DefaultTimeout. TLS certificates are always verified.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *zap.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/") + "/"
		}
	}
}

// WithHTTPClient uses a copy of hc for requests. The copy's Timeout is set to
// DefaultTimeout when unset; hc itself is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.httpClient = &cp
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingAPIToken
	}

	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = DefaultTimeout
	}
	return c, nil
}

// Request sends one call to endpoint (relative to the base URL).
//
// For GET requests body is sent as the query string, otherwise as a form body.
// headers override the defaults. A transport failure is returned as
// *entities.TransportError; a non-2xx answer is NOT an error here and must be
// checked by the caller through RawResponse.OK.
func (c *Client) Request(ctx context.Context, endpoint, method string, body Params, headers map[string]string) (*RawResponse, error) {
	if method == "" {
		method = http.MethodPost
	}
	link := c.baseURL + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	encoded := ""
	if len(body) > 0 {
		encoded = body.Encode()
		if method == http.MethodGet {
			link += "?" + encoded
		} else {
			reader = strings.NewReader(encoded)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, link, reader)
	if err != nil {
		return nil, &entities.TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.token+":x")))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debug("request start",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("body_len", len(encoded)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &entities.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("read body failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &entities.TransportError{Endpoint: endpoint, Err: err}
	}

	c.log.Debug("request done",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("response_len", len(b)),
	)

	return &RawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}, nil
}
