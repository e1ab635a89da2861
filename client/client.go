// Package client is the REST side of the admin console. All persistence and
// validation enforcement live in the pooja backend; everything here is a thin
// per-entity wrapper over its /api surface.
package client

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TokenProvider hands out the bearer token attached to outgoing requests. An
// empty token means the request goes out unauthenticated.
type TokenProvider interface {
	Token() string
}

type Config struct {
	BaseURL    string
	Tokens     TokenProvider
	HTTPClient *http.Client
}

// Client carries the connection settings every Resource shares. Its behavior
// is a function of the Config alone; there is no ambient session lookup.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		httpClient: httpClient,
	}
}

// do issues one request and decodes a JSON response into out when out is
// non-nil. Failures map onto the client error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %+v", err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		logrus.Warnf("unauthorized response for %s %s, token ignored by backend", method, path)
		return errors.Wrapf(ErrUnauthorized, "%s %s", method, path)
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Method: method, Path: path}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		respBody, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 4096))
		return newServerError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}
	return nil
}
