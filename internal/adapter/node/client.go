package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"confluence-poster/internal/domain/model"
	"confluence-poster/internal/domain/ports"
)

const pipesPath = "/api/pipes"

// Client implements PipeProvider against a node's HTTP API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.PipeProvider = (*Client)(nil)

// New creates a node client. httpClient may be nil to use a default client.
func New(baseURL, token string, httpClient *http.Client, logger ports.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchAllPipes retrieves every pipe configured on the node.
func (c *Client) FetchAllPipes(ctx context.Context) ([]model.Pipe, error) {
	endpoint := c.baseURL + pipesPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &model.TransportError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &model.UpstreamStatusError{
			URL:        c.baseURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	var pipes []model.Pipe
	if err := json.NewDecoder(resp.Body).Decode(&pipes); err != nil {
		return nil, fmt.Errorf("decode pipes from %s: %w", c.baseURL, err)
	}

	if c.logger != nil {
		c.logger.Debug(ctx, "fetched pipes from node", "node", c.baseURL, "count", len(pipes))
	}
	return pipes, nil
}
