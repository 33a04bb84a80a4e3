// Package checks implements the external signal probes used by the fallback
// scorer: a knowledge-base existence lookup and a structured-markup probe.
// Probes never return errors — any transport, status, or decode failure
// resolves to the negative outcome.
package checks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	defaultWikipediaBase = "https://en.wikipedia.org/w/api.php?action=query&format=json&titles="
	probeTimeout         = 10 * time.Second
)

// Wikipedia checks whether the English Wikipedia has a page for a title.
type Wikipedia struct {
	base   string
	client *http.Client
	log    *zap.Logger
}

// NewWikipedia creates a Wikipedia check. base overrides the query endpoint
// (the page title is appended URL-escaped); pass "" for the default. client
// and log may be nil.
func NewWikipedia(base string, client *http.Client, log *zap.Logger) *Wikipedia {
	if base == "" {
		base = defaultWikipediaBase
	}
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Wikipedia{base: base, client: client, log: log}
}

// wikipediaResponse is the slice of the MediaWiki query response we care
// about: a page map keyed by page ID.
type wikipediaResponse struct {
	Query struct {
		Pages map[string]json.RawMessage `json:"pages"`
	} `json:"query"`
}

// HasEntry reports whether a page titled brand exists. Page ID "-1" is
// MediaWiki's sentinel for a missing page.
func (w *Wikipedia) HasEntry(ctx context.Context, brand string) bool {
	if brand == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.base+url.QueryEscape(brand), nil)
	if err != nil {
		return false
	}

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Debug("wikipedia lookup failed", zap.String("brand", brand), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.log.Debug("wikipedia lookup status", zap.String("brand", brand), zap.Int("status", resp.StatusCode))
		return false
	}

	var payload wikipediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		w.log.Debug("wikipedia response decode failed", zap.String("brand", brand), zap.Error(err))
		return false
	}
	if len(payload.Query.Pages) == 0 {
		return false
	}

	_, missing := payload.Query.Pages["-1"]
	return !missing
}
