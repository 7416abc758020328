// Package upstream contains typed HTTP clients for the remote financing API,
// the system of record this console fronts. One client per remote service
// (auth, dealers, loans); all business mutations are delegated there.
//
// Contract notes, preserved for backend compatibility:
//   - paths are exactly the ones the existing backend serves (/api/...)
//   - most endpoints expect Accept: text/plain; dealer registration expects
//     application/json
//   - no pagination or filter parameters are sent — collections are fetched
//     whole and narrowed in memory by the caller
//   - no retries; a failed call surfaces immediately
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"dealerdesk/internal/metrics"
)

const (
	acceptText = "text/plain"
	acceptJSON = "application/json"

	defaultTimeout = 30 * time.Second

	// Upstream error bodies are pass-through text; keep them bounded.
	maxErrorBody = 4 << 10
)

// Client issues requests against one remote service. A shared Breaker guards
// all clients talking to the same host.
type Client struct {
	service string
	baseURL string
	http    *http.Client
	breaker *Breaker
}

// NewClient builds a client for one remote service. breaker may be nil (tests).
func NewClient(service, baseURL string, breaker *Breaker) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		breaker: breaker,
	}
}

// call describes one request. token == "" sends the request unauthenticated,
// matching the pre-login contract of the original console.
type call struct {
	method string
	path   string
	accept string
	token  string
	body   any
	out    any // decode target; nil discards the response body
}

// do executes the call through the breaker, decoding a 2xx JSON body into
// cl.out. Transport and status errors are logged here and returned to the
// caller — never swallowed.
func (c *Client) do(ctx context.Context, cl call) error {
	run := func() error { return c.roundTrip(ctx, cl) }

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(run)
	} else {
		err = run()
	}
	metrics.ObserveUpstream(c.service, err)

	if err != nil {
		log.Error().
			Str("service", c.service).
			Str("method", cl.method).
			Str("path", cl.path).
			Err(err).
			Msg("upstream request failed")
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, cl call) error {
	var reqBody io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", cl.path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.path, err)
	}

	accept := cl.accept
	if accept == "" {
		accept = acceptText
	}
	req.Header.Set("Accept", accept)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", cl.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   cl.path,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if cl.out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", cl.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// Some write endpoints answer 200 with an empty body.
		return nil
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return &MalformedResponseError{Endpoint: cl.path, Reason: err.Error()}
	}
	return nil
}
