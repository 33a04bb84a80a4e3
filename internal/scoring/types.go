// Package scoring defines the GEO scorecard data model and the local
// heuristic scorer used when the remote scoring service is unavailable.
package scoring

// Breakdown holds the per-category sub-scores of a GEO score. Field order is
// the display order of the scorecard categories.
type Breakdown struct {
	Recall    int `json:"recall"`    // AI answer-engine recall estimate
	Wiki      int `json:"wiki"`      // knowledge-base presence
	SEO       int `json:"seo"`       // classic search visibility estimate
	Platforms int `json:"platforms"` // platform coverage incl. structured markup
}

// Sum returns the total of all category sub-scores.
func (b Breakdown) Sum() int {
	return b.Recall + b.Wiki + b.SEO + b.Platforms
}

// HistoryLink points at a prior report or supporting reference for a brand.
type HistoryLink struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Result is a complete GEO scorecard for one brand.
//
// Results produced by the local fallback scorer always satisfy
// Total == Breakdown.Sum(). A remote result's total is authoritative and is
// adopted verbatim without re-validation.
type Result struct {
	Brand        string        `json:"brand"`
	Total        int           `json:"total"`
	Breakdown    Breakdown     `json:"breakdown"`
	Suggestions  []string      `json:"suggestions"`
	HistoryLinks []HistoryLink `json:"history_links"`
}

// Tier returns the display grade for a total score.
func Tier(total int) string {
	switch {
	case total >= 85:
		return "A"
	case total >= 70:
		return "B"
	case total >= 50:
		return "C"
	case total >= 30:
		return "D"
	default:
		return "F"
	}
}
