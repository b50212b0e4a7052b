package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Client talks to an Insight explorer API
type Client struct {
	baseURI      string
	transport    Transport
	httpClient   *http.Client
	logger       log.FieldLogger
	throwOnNotOk atomic.Bool
}

// Option configures a Client at construction time
type Option func(*Client)

// WithTransport replaces the default HTTP transport
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithHTTPClient sets the http.Client used by the default transport
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithThrowOnNotOkResponse sets the initial non-2xx policy
func WithThrowOnNotOkResponse(flag bool) Option {
	return func(c *Client) {
		c.SetThrowOnNotOkResponse(flag)
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Insight API client. Non-2xx responses are returned
// as *BlockchainCallError unless disabled.
func NewClient(baseURI string, opts ...Option) *Client {
	c := &Client{
		baseURI: baseURI,
		logger:  log.StandardLogger(),
	}
	c.SetThrowOnNotOkResponse(true)

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(baseURI, c.httpClient)
	}

	return c
}

// BaseURI returns the endpoint the client was created for
func (c *Client) BaseURI() string {
	return c.baseURI
}

// SetThrowOnNotOkResponse changes the non-2xx policy for subsequent calls
func (c *Client) SetThrowOnNotOkResponse(flag bool) *Client {
	c.throwOnNotOk.Store(flag)
	return c
}

// ShouldThrowOnNotOkResponse returns the current non-2xx policy
func (c *Client) ShouldThrowOnNotOkResponse() bool {
	return c.throwOnNotOk.Load()
}

// SendGet issues a GET for path and returns the decoded JSON body. It is the
// only method performing network I/O. A body that is not valid JSON decodes to nil.
func (c *Client) SendGet(ctx context.Context, path string, query url.Values) (Value, error) {
	start := time.Now()
	resp, err := c.transport.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	logger := c.logger.WithFields(log.Fields{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	})
	if len(query) > 0 {
		logger = logger.WithField("query", query.Encode())
	}
	logger.Debug("insight request")

	if c.ShouldThrowOnNotOkResponse() && !resp.OK() {
		return nil, &BlockchainCallError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return c.decode(path, resp.Body), nil
}

func (c *Client) decode(path string, body []byte) Value {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v Value
	if err := dec.Decode(&v); err != nil {
		c.logger.WithField("path", path).WithError(err).Debug("response body is not valid JSON")
		return nil
	}
	if dec.More() {
		c.logger.WithField("path", path).Debug("response body has trailing data")
		return nil
	}
	return v
}

// requireArgument fails with an InvalidArgumentError when condition is false
func requireArgument(condition bool, message string) error {
	if !condition {
		return &InvalidArgumentError{Message: message}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasBlank(values []string) bool {
	for _, v := range values {
		if isBlank(v) {
			return true
		}
	}
	return false
}

// pathOf joins escaped segments into a request path
func pathOf(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// addressList escapes each address and joins them with a literal comma
func addressList(addresses []string) string {
	escaped := make([]string, len(addresses))
	for i, a := range addresses {
		escaped[i] = url.PathEscape(a)
	}
	return strings.Join(escaped, ",")
}
