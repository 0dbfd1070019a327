// Package api implements the backend gateway ports over the ShopMate REST
// surface. One Client carries the base URL, the HTTP client and the bearer
// credential; each gateway file is a thin slice of endpoints on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"shopmate/config"
	domainerrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"

	"github.com/pkg/errors"
)

// Client is the shared transport under every gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *service.TokenHolder
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, tokens *service.TokenHolder, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// errorEnvelope covers the backend's rejection shapes. Most endpoints put
// the message under "detail"; a few older ones use "message".
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// call performs one request against the backend. authed requests fail with
// ErrUnauthorized before any network activity when no token is held. A
// non-2xx response becomes a RemoteError carrying the backend's message
// verbatim; a network failure becomes a TransportError. Both are terminal
// for this attempt: the client never retries on its own.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var token string
	if authed {
		token = c.tokens.Token()
		if token == "" {
			return domainerrors.ErrUnauthorized
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("calling backend", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domainerrors.NewRemoteError(resp.StatusCode, rejectionMessage(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}

	return nil
}

// get issues an authenticated or anonymous GET.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, authed bool) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out, authed)
}

// post issues a POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any, authed bool) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out, authed)
}

// put issues an authenticated PUT with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out, true)
}

// delete issues an authenticated DELETE.
func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, out, true)
}

// rejectionMessage extracts the backend's human-readable message from a
// rejection body. An empty result lets RemoteError fall back to the HTTP
// status text.
func rejectionMessage(data []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	return ""
}
