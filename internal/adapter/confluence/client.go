package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"confluence-poster/internal/domain/model"
	"confluence-poster/internal/domain/ports"
)

const (
	contentPath           = "/rest/api/content/"
	storageRepresentation = "storage"
)

// Client talks to the Confluence content REST API with basic auth.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.PageStore = (*Client)(nil)

// New creates a Confluence client rooted at baseURL (e.g. https://example.atlassian.net/wiki).
// httpClient may be nil to use a default client.
func New(baseURL, username, password string, httpClient *http.Client, logger ports.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: httpClient,
		logger:     logger,
	}
}

type contentVersion struct {
	Number int `json:"number"`
}

type contentResponse struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Version contentVersion `json:"version"`
}

type storageBody struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type updateRequest struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Version contentVersion `json:"version"`
	Body    struct {
		Storage storageBody `json:"storage"`
	} `json:"body"`
}

// GetPage fetches the page with its current version.
func (c *Client) GetPage(ctx context.Context, id string) (*model.Page, error) {
	endpoint := c.contentURL(id) + "?expand=version"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("get page %s: %w", id, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("get page %s: %w", id, err)
	}

	var content contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("decode page %s: %w", id, err)
	}

	return &model.Page{
		ID:      content.ID,
		Type:    content.Type,
		Title:   content.Title,
		Version: content.Version.Number,
	}, nil
}

// UpdatePage replaces the page body and title at the given version.
func (c *Client) UpdatePage(ctx context.Context, update model.PageUpdate) error {
	payload := updateRequest{
		ID:      update.ID,
		Type:    update.Type,
		Title:   update.Title,
		Version: contentVersion{Number: update.Version},
	}
	payload.Body.Storage = storageBody{
		Value:          update.Body,
		Representation: storageRepresentation,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(update.ID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("update page %s: %w", update.ID, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("update page %s to version %d: %w", update.ID, update.Version, err)
	}

	if c.logger != nil {
		c.logger.Debug(ctx, "confluence page updated", "page_id", update.ID, "version", update.Version)
	}
	return nil
}

func (c *Client) contentURL(id string) string {
	return c.baseURL + contentPath + url.PathEscape(id)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(c.username, c.password)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	detail := strings.TrimSpace(string(data))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: status %d: %s", model.ErrPageNotFound, resp.StatusCode, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", model.ErrAuthentication, resp.StatusCode, detail)
	default:
		return fmt.Errorf("confluence returned status %d: %s", resp.StatusCode, detail)
	}
}
