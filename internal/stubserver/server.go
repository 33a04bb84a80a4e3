// Package stubserver is a local stand-in for the remote GEO scoring service
// so the CLI can be exercised end to end without network access. Scores are
// seeded from the brand name, so repeated requests for the same brand agree.
package stubserver

import (
	"encoding/json"
	"hash/fnv"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dotcommander/geoscore/internal/scoring"
)

// Server serves the scoring API surface the CLI expects.
type Server struct {
	log *zap.Logger
}

// New creates a stub scoring server. log may be nil.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log}
}

// Routes returns the router for the stub API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Post("/api/score", s.handleScore)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// scoreRequest mirrors the scoring endpoint's request body.
type scoreRequest struct {
	BrandName string `json:"brand_name"`
	URL       string `json:"url"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid request body"})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "url must not be empty"})
		return
	}
	if req.BrandName == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "brand_name must not be empty"})
		return
	}

	res := stubResult(req.BrandName, req.URL)
	s.log.Debug("stub score served",
		zap.String("brand", req.BrandName),
		zap.Int("total", res.Total))
	writeJSON(w, http.StatusOK, res)
}

// stubResult composes a plausible scorecard seeded from the brand name.
func stubResult(brand, url string) *scoring.Result {
	h := fnv.New64a()
	h.Write([]byte(brand))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	b := scoring.Breakdown{
		Recall:    15 + rng.Intn(21), // [15,35]
		Wiki:      rng.Intn(2) * 20,  // 0 or 20
		SEO:       10 + rng.Intn(11), // [10,20]
		Platforms: 5 + rng.Intn(11),  // [5,15]
	}

	suggestions := []string{
		"Publish structured data (JSON-LD) on your landing pages",
		"Create or improve the brand's knowledge-base entry",
	}
	if b.SEO < 15 {
		suggestions = append(suggestions, "Improve meta descriptions and heading structure")
	}

	return &scoring.Result{
		Brand:       brand,
		Total:       b.Sum(),
		Breakdown:   b,
		Suggestions: suggestions,
		HistoryLinks: []scoring.HistoryLink{
			{URL: url + "#report-previous", Title: "Previous report"},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
