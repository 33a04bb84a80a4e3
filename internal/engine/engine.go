// Package engine orchestrates one score calculation: remote service first,
// local heuristic fallback on any remote failure. It owns the calculation
// lifecycle — the single-flight guard, duplicate suppression, and the
// result/warning envelope the renderers consume.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dotcommander/geoscore/internal/identity"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// Scorer is the remote scoring dependency.
type Scorer interface {
	Score(ctx context.Context, brand, url string) (*scoring.Result, error)
}

// Fallback computes a local scorecard when the remote path fails.
type Fallback interface {
	Score(ctx context.Context, brand, url string) *scoring.Result
}

// Snapshot is the renderable outcome of the most recent calculation. Result
// and Warning are independent fields rather than a success/failure variant:
// a degraded calculation carries both, and both render simultaneously.
type Snapshot struct {
	URL      string
	Result   *scoring.Result
	LogoURL  string
	Warning  string
	Fallback bool
}

// Report collects one run's snapshots for the output formatters.
type Report struct {
	Snapshots []Snapshot
	StartTime time.Time
}

// Engine runs score calculations. At most one calculation is in flight at a
// time, and a request for the same URL as the previous one is suppressed.
type Engine struct {
	remote   Scorer
	fallback Fallback
	log      *zap.Logger

	mu       sync.Mutex
	inFlight bool
	lastURL  string
	snap     Snapshot
}

// New creates an Engine. log may be nil.
func New(remote Scorer, fallback Fallback, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{remote: remote, fallback: fallback, log: log}
}

// Compute scores rawURL and returns the resulting snapshot. The second
// return is false — and the current snapshot is returned unchanged — when
// the call is a no-op: an empty URL, another calculation in flight, or a URL
// exactly equal to the previous request's. Equality is raw string
// comparison, so "https://a.com" and "https://a.com/" are distinct requests.
func (e *Engine) Compute(ctx context.Context, rawURL string) (Snapshot, bool) {
	e.mu.Lock()
	if rawURL == "" || e.inFlight || rawURL == e.lastURL {
		snap := e.snap
		e.mu.Unlock()
		return snap, false
	}
	// The URL is recorded before the outcome is known so that rapid
	// duplicate submissions are suppressed while this request is still
	// outstanding.
	e.inFlight = true
	e.lastURL = rawURL
	e.mu.Unlock()

	brand := identity.DeriveBrand(rawURL)
	snap := Snapshot{URL: rawURL, LogoURL: identity.DeriveLogoURL(rawURL)}

	res, err := e.remote.Score(ctx, brand, rawURL)
	if err != nil {
		e.log.Debug("remote scoring failed, computing local heuristic",
			zap.String("url", rawURL), zap.Error(err))
		snap.Warning = err.Error()
		snap.Result = e.fallback.Score(ctx, brand, rawURL)
		snap.Fallback = true
	} else {
		snap.Result = res
	}

	e.mu.Lock()
	e.snap = snap
	e.inFlight = false
	e.mu.Unlock()
	return snap, true
}

// Reset clears the last result, warning, and duplicate-suppression state.
// A reset engine accepts a previously scored URL again. Idempotent.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastURL = ""
	e.snap = Snapshot{}
}

// Snapshot returns the outcome of the most recent completed calculation.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}
