// Package client talks to a running contractflow API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dukex/contractflow/pkg/dashboard"
	"github.com/dukex/contractflow/pkg/models"
)

const defaultTimeout = 10 * time.Second

// APIError is a problem document returned by the server.
type APIError struct {
	StatusCode int    `json:"status"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Type, e.Detail)
	}

	return fmt.Sprintf("%d %s", e.StatusCode, e.Type)
}

// Client is a thin JSON client for the REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:9091.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListContracts fetches the contracts matching filter with their display projections.
func (c *Client) ListContracts(ctx context.Context, filter models.StatusFilter) ([]dashboard.ContractView, error) {
	path := "/contracts"
	if filter != "" {
		path += "?status=" + url.QueryEscape(string(filter))
	}

	var resp struct {
		Contracts []dashboard.ContractView `json:"contracts"`
	}

	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Contracts, nil
}

// ListBlueprints fetches every blueprint.
func (c *Client) ListBlueprints(ctx context.Context) ([]*models.Blueprint, error) {
	var resp struct {
		Blueprints []*models.Blueprint `json:"blueprints"`
	}

	if err := c.do(ctx, http.MethodGet, "/blueprints", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Blueprints, nil
}

// CreateBlueprint creates a blueprint and returns it.
func (c *Client) CreateBlueprint(ctx context.Context, name string) (*models.Blueprint, error) {
	var bp models.Blueprint
	if err := c.do(ctx, http.MethodPost, "/blueprints", map[string]string{"name": name}, &bp); err != nil {
		return nil, err
	}

	return &bp, nil
}

// GenerateContract creates a contract from a blueprint.
func (c *Client) GenerateContract(ctx context.Context, blueprintID string) (*dashboard.ContractView, error) {
	var view dashboard.ContractView
	if err := c.do(ctx, http.MethodPost, "/contracts", map[string]string{"blueprint_id": blueprintID}, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

// AdvanceContract moves a contract to its next status.
func (c *Client) AdvanceContract(ctx context.Context, id string) (*dashboard.ContractView, error) {
	var view dashboard.ContractView
	if err := c.do(ctx, http.MethodPost, "/contracts/"+url.PathEscape(id)+"/advance", nil, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

// RevokeContract revokes a Created or Sent contract.
func (c *Client) RevokeContract(ctx context.Context, id string) (*dashboard.ContractView, error) {
	var view dashboard.ContractView
	if err := c.do(ctx, http.MethodPost, "/contracts/"+url.PathEscape(id)+"/revoke", nil, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		apiErr.StatusCode = resp.StatusCode

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
