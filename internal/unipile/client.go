// Package unipile provides the HTTP client for the Unipile API.
package unipile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/omnimsg/unipile-mcp/internal/common"
)

const (
	defaultTimeout  = 60 * time.Second
	maxResponseSize = 50 << 20 // 50MB cap on response bodies
)

// Response is the outcome of a Unipile API call that reached the server.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	mt := r.ContentType
	for i := 0; i < len(mt); i++ {
		if mt[i] == ';' {
			mt = mt[:i]
			break
		}
	}
	return mt == "application/json" || mt == "application/problem+json"
}

// Client calls the Unipile API with the configured credentials. Transport
// failures are returned as errors; HTTP error statuses are returned as a
// Response for the caller to classify.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	maxBody    int64
}

// NewClient creates a Unipile API client. baseURL is the full API root
// including the version segment (e.g. https://api1.unipile.com:13111/api/v1).
func NewClient(baseURL, apiKey string, logger *common.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:  logger,
		maxBody: maxResponseSize,
	}
}

// Do performs one API call. path must start with "/" and have its
// placeholders already substituted; query and body may be nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body map[string]interface{}) (*Response, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Msg("Unipile request failed")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(data)) > c.maxBody {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", c.maxBody)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Unipile request completed")

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
