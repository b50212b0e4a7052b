package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Transport performs a GET against the Insight server. Implementations resolve
// path against their own base URI.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
}

// httpTransport implements Transport on top of net/http
type httpTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTransport creates the default transport bound to baseURI.
// A nil httpClient gets a client with DefaultTimeout.
func NewHTTPTransport(baseURI string, httpClient *http.Client) Transport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &httpTransport{
		baseURL:    strings.TrimRight(baseURI, "/"),
		httpClient: httpClient,
	}
}

func (t *httpTransport) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	u := t.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
