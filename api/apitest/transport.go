// Package apitest provides a scripted api.Transport for tests.
package apitest

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/chinmay1088/insight/api"
)

// Request is a call recorded by Transport
type Request struct {
	Path  string
	Query url.Values
}

// Transport replays queued responses in call order and records every request.
// Running out of responses is reported as a transport error.
type Transport struct {
	mu        sync.Mutex
	responses []*api.Response
	requests  []Request
}

// NewTransport returns a Transport queued with responses
func NewTransport(responses ...*api.Response) *Transport {
	return &Transport{responses: responses}
}

// JSON builds a response with the given status and body
func JSON(status int, body string) *api.Response {
	return &api.Response{StatusCode: status, Body: []byte(body)}
}

// Push queues more responses
func (t *Transport) Push(responses ...*api.Response) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses = append(t.responses, responses...)
}

func (t *Transport) Get(_ context.Context, path string, query url.Values) (*api.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, Request{Path: path, Query: query})
	if len(t.responses) == 0 {
		return nil, fmt.Errorf("apitest: no response queued for GET %s", path)
	}

	resp := t.responses[0]
	t.responses = t.responses[1:]
	return resp, nil
}

// Requests returns the requests seen so far
func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Request(nil), t.requests...)
}

// Remaining returns how many queued responses were not consumed
func (t *Transport) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.responses)
}
