package canto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hferrand/canto-field-go/internal/cache"
	"github.com/hferrand/canto-field-go/internal/logger"
	"github.com/hferrand/canto-field-go/internal/model"
	"github.com/hferrand/canto-field-go/internal/port"
)

// Client talks to the Canto read API. Search and get-asset results are
// served from the cache when possible and written through to it on every
// successful fetch.
type Client struct {
	cfg   Config
	http  *http.Client
	cache port.Cache
}

// compile-time check: *Client must satisfy port.CantoAPI
var _ port.CantoAPI = (*Client)(nil)

func NewClient(cfg Config, ca port.Cache) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: timeout},
		cache: ca,
	}
}

func (c *Client) Search(ctx context.Context, query string, opts port.SearchOptions) (*port.SearchResult, error) {
	opts = opts.Normalized()
	key := cache.SearchKey(query, opts)

	if data, err := c.cache.Get(ctx, key); err == nil && data != nil {
		var res port.SearchResult
		if err := json.Unmarshal(data, &res); err == nil {
			logger.Debugf(ctx, "search cache hit for %q", query)
			return &res, nil
		}
	}

	schemes := make([]string, len(opts.Schemes))
	for i, s := range opts.Schemes {
		schemes[i] = string(s)
	}
	params := url.Values{}
	params.Set("keyword", query)
	params.Set("limit", strconv.Itoa(opts.Limit))
	params.Set("start", strconv.Itoa(opts.Start))
	params.Set("scheme", strings.Join(schemes, "|"))
	params.Set("operator", opts.Operator)
	params.Set("sortBy", opts.SortBy)
	params.Set("sortDirection", opts.SortDirection)
	if opts.SearchInField != "" {
		params.Set("searchInField", opts.SearchInField)
	}

	raw, err := c.request(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	var res port.SearchResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	c.writeThrough(ctx, key, raw)
	return &res, nil
}

func (c *Client) GetAsset(ctx context.Context, id string, scheme model.Scheme) (json.RawMessage, error) {
	key := cache.AssetKey(id)
	if data, err := c.cache.Get(ctx, key); err == nil && data != nil {
		logger.Debugf(ctx, "asset cache hit for #%s", id)
		return data, nil
	}

	schemes := model.AllSchemes
	if scheme != "" {
		schemes = []model.Scheme{scheme}
	}

	// Canto has one endpoint per asset type and no unified lookup, so an
	// unknown scheme is probed in order until one answers.
	var lastErr error
	for _, s := range schemes {
		raw, err := c.request(ctx, string(s)+"/"+url.PathEscape(id), nil)
		if err != nil {
			lastErr = err
			continue
		}
		c.writeThrough(ctx, key, raw)
		return raw, nil
	}
	return nil, lastErr
}

func (c *Client) GetTree(ctx context.Context) ([]model.TreeNode, error) {
	params := url.Values{}
	params.Set("sortBy", "name")
	params.Set("sortDirection", "ascending")
	params.Set("layer", "-1")

	raw, err := c.request(ctx, "tree", params)
	if err != nil {
		return nil, err
	}

	var tree struct {
		Results []model.TreeNode `json:"results"`
	}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return tree.Results, nil
}

func (c *Client) GetAlbumAssets(ctx context.Context, albumID string) (*port.SearchResult, error) {
	raw, err := c.request(ctx, "album/"+url.PathEscape(albumID), nil)
	if err != nil {
		return nil, err
	}

	var res port.SearchResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &res, nil
}

// StreamPreview opens the authenticated binary preview of an asset. The
// caller owns the returned body.
func (c *Client) StreamPreview(ctx context.Context, scheme model.Scheme, id string) (io.ReadCloser, string, error) {
	if !c.cfg.IsConfigured() {
		return nil, "", ErrNotConfigured
	}

	endpoint := c.cfg.BaseURL() + "/api_binary/v1/" + string(scheme) + "/" + url.PathEscape(id) + "/preview"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AppToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, "", &HTTPError{Code: resp.StatusCode}
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// request performs one authenticated GET against /api/v1/<endpoint> and
// applies the response contract: HTTP 200, non-empty body, valid JSON, no
// top-level "error" key. Each violation maps to its own failure reason.
func (c *Client) request(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	u := c.cfg.BaseURL() + "/api/v1/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AppToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if raw, ok := probe["error"]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			msg = string(raw)
		}
		return nil, &UpstreamError{Message: msg}
	}

	return body, nil
}

func (c *Client) writeThrough(ctx context.Context, key string, raw []byte) {
	if err := c.cache.Set(ctx, key, raw); err != nil {
		logger.Warnf(ctx, "cache write-through failed for %q: %v", key, err)
	}
}
