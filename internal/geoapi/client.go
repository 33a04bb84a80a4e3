// Package geoapi is the HTTP client for the remote GEO scoring service.
package geoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dotcommander/geoscore/internal/schema"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// scorePath is the scoring operation under the service's API base.
const scorePath = "/score"

// Client calls the remote scoring endpoint.
type Client struct {
	base      string
	http      *http.Client
	validator *schema.Validator
	log       *zap.Logger
}

// New creates a Client for the API base URL. timeout 0 means no client-side
// timeout: a hung request blocks until the server resolves it. log may be
// nil.
func New(base string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:      strings.TrimRight(base, "/"),
		http:      &http.Client{Timeout: timeout},
		validator: validator,
		log:       log,
	}, nil
}

// scoreRequest is the JSON body submitted to the scoring endpoint.
type scoreRequest struct {
	BrandName string `json:"brand_name"`
	URL       string `json:"url"`
}

// errorResponse is the JSON body the service returns on error statuses.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Score submits brand and rawURL for scoring and returns the service's
// scorecard. Error messages are user-facing: the caller surfaces them as a
// non-fatal warning alongside a locally computed fallback scorecard.
func (c *Client) Score(ctx context.Context, brand, rawURL string) (*scoring.Result, error) {
	body, err := json.Marshal(scoreRequest{BrandName: brand, URL: rawURL})
	if err != nil {
		return nil, fmt.Errorf("encode scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+scorePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring service unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scoring response: %w", err)
	}
	c.log.Debug("scoring service responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errorDetail(data, resp.StatusCode))
	}

	if err := c.validator.ValidateJSON(data); err != nil {
		return nil, fmt.Errorf("malformed scoring response: %w", err)
	}
	var res scoring.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("malformed scoring response: %w", err)
	}
	return &res, nil
}

// errorDetail extracts the service's detail message from an error body,
// falling back to a generic status message when the body is absent or
// unparseable.
func errorDetail(body []byte, status int) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Detail != "" {
		return er.Detail
	}
	return fmt.Sprintf("scoring service returned status %d", status)
}
