package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/querylab/gqlagent/introspection"
)

// Client executes GraphQL documents against a single endpoint. It carries
// the endpoint's static headers (for example the admin-secret header) on
// every request.
type Client struct {
	client   *http.Client
	endpoint string
	headers  map[string]string
	logger   *slog.Logger
}

// NewClient creates a new client for one endpoint.
func NewClient(endpoint string, options ...Option) *Client {
	client := &Client{
		client:   http.DefaultClient,
		endpoint: endpoint,
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(client)
	}

	return client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.client = httpClient
	}
}

// WithHeaders sets headers sent on every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Execute posts one document with its bound variables and returns the raw
// data payload. Backend-reported GraphQL errors surface as a *BackendError
// whose message joins every reported reason.
func (c *Client) Execute(ctx context.Context, operationName, query string, variables map[string]any) (json.RawMessage, error) {
	requestID := uuid.NewString()
	c.logger.Debug("graphql request", "id", requestID, "operation", operationName)

	req, err := newRequest(ctx, c.endpoint, operationName, query, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to create post request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := parseResponse(resp)
	if err != nil {
		c.logger.Debug("graphql request failed", "id", requestID, "error", err)

		return nil, err
	}

	return data, nil
}

// FetchSchema issues the standard introspection document and decodes the
// resulting type system. Shaped to plug into introspection.NewCache.
func (c *Client) FetchSchema(ctx context.Context) (*introspection.Schema, error) {
	data, err := c.Execute(ctx, "IntrospectionQuery", introspection.Document, nil)
	if err != nil {
		return nil, fmt.Errorf("introspection query failed: %w", err)
	}

	var result introspection.Query
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode introspection result: %w", err)
	}

	return &result.Schema, nil
}
