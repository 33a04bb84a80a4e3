package checks

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const (
	// defaultRelayBase is a public CORS relay; the target URL is appended
	// escaped. The relay is kept even though a CLI could fetch directly so
	// that the probe sees the same rendered content the hosted scorer does.
	defaultRelayBase = "https://api.allorigins.win/raw?url="

	// jsonLDMarker is the substring whose presence indicates structured-data
	// markup on the page.
	jsonLDMarker = "application/ld+json"

	// maxProbeBytes bounds how much of the page body is scanned.
	maxProbeBytes = 512 * 1024
)

// MarkupProbe fetches a page through a relay and scans it for JSON-LD
// structured data.
type MarkupProbe struct {
	relay  string
	client *http.Client
	log    *zap.Logger
}

// NewMarkupProbe creates a MarkupProbe. relay overrides the relay prefix;
// pass "" for the default. client and log may be nil.
func NewMarkupProbe(relay string, client *http.Client, log *zap.Logger) *MarkupProbe {
	if relay == "" {
		relay = defaultRelayBase
	}
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MarkupProbe{relay: relay, client: client, log: log}
}

// HasStructuredMarkup reports whether the page at target serves JSON-LD
// structured data. Any failure resolves to false.
func (p *MarkupProbe) HasStructuredMarkup(ctx context.Context, target string) bool {
	if target == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.relay+url.QueryEscape(target), nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debug("markup probe failed", zap.String("url", target), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Debug("markup probe status", zap.String("url", target), zap.Int("status", resp.StatusCode))
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBytes))
	if err != nil {
		return false
	}
	return bytes.Contains(body, []byte(jsonLDMarker))
}
