package scoring

import (
	"context"
	"math/rand"
)

// platformsCap bounds the platforms sub-score regardless of the structured
// markup bonus.
const platformsCap = 15

// KnowledgeBase reports whether a reference encyclopedia has an entry for a
// brand name.
type KnowledgeBase interface {
	HasEntry(ctx context.Context, brand string) bool
}

// MarkupProbe reports whether a page serves structured-data markup.
type MarkupProbe interface {
	HasStructuredMarkup(ctx context.Context, url string) bool
}

// FallbackScorer computes a plausible placeholder scorecard from independent
// signal checks when the authoritative scoring service is unavailable. The
// randomness source is injected so scores are deterministic under test.
type FallbackScorer struct {
	rng    *rand.Rand
	kb     KnowledgeBase
	markup MarkupProbe
}

// NewFallbackScorer creates a FallbackScorer. kb and markup may be nil, in
// which case the corresponding signals contribute zero.
func NewFallbackScorer(rng *rand.Rand, kb KnowledgeBase, markup MarkupProbe) *FallbackScorer {
	return &FallbackScorer{rng: rng, kb: kb, markup: markup}
}

// Score computes a heuristic scorecard for brand at url. The total always
// equals the breakdown sum; suggestions and history links stay empty — only
// the remote service can populate those.
func (s *FallbackScorer) Score(ctx context.Context, brand, url string) *Result {
	recall := 10 + s.rng.Intn(25) // [10,34]
	seo := 10 + s.rng.Intn(10)    // [10,19]

	wiki := 0
	if s.kb != nil && s.kb.HasEntry(ctx, brand) {
		wiki = 20
	}

	markupBonus := 0
	if s.markup != nil && s.markup.HasStructuredMarkup(ctx, url) {
		markupBonus = 5
	}
	platforms := 5 + s.rng.Intn(5) + markupBonus // [5,14] capped at 15
	if platforms > platformsCap {
		platforms = platformsCap
	}

	b := Breakdown{Recall: recall, Wiki: wiki, SEO: seo, Platforms: platforms}
	return &Result{
		Brand:        brand,
		Total:        b.Sum(),
		Breakdown:    b,
		Suggestions:  []string{},
		HistoryLinks: []HistoryLink{},
	}
}
