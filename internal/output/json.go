package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// JSONFormatter formats a report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format formats the report as JSON.
func (f *JSONFormatter) Format(report *engine.Report) error {
	out := JSONReport{
		Header: JSONHeader{
			Tool:      "geoscore",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			Sites:    len(report.Snapshots),
			Duration: time.Since(report.StartTime).Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(report.Snapshots)),
	}

	for i, snap := range report.Snapshots {
		res := JSONResult{
			URL:      snap.URL,
			LogoURL:  snap.LogoURL,
			Warning:  snap.Warning,
			Fallback: snap.Fallback,
		}
		if snap.Fallback {
			out.Summary.Fallbacks++
		}
		if snap.Result != nil {
			res.Brand = snap.Result.Brand
			res.Total = snap.Result.Total
			res.Tier = scoring.Tier(snap.Result.Total)
			res.Breakdown = snap.Result.Breakdown
			res.Suggestions = snap.Result.Suggestions
			res.HistoryLinks = snap.Result.HistoryLinks
		}
		out.Results[i] = res
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(out, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}

// JSONReport represents the complete JSON report structure.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics.
type JSONSummary struct {
	Sites     int    `json:"sites"`
	Fallbacks int    `json:"fallbacks"`
	Duration  string `json:"duration"`
}

// JSONResult represents a single site's scoring result.
type JSONResult struct {
	URL          string                `json:"url"`
	Brand        string                `json:"brand"`
	Total        int                   `json:"total"`
	Tier         string                `json:"tier"`
	Breakdown    scoring.Breakdown     `json:"breakdown"`
	Suggestions  []string              `json:"suggestions,omitempty"`
	HistoryLinks []scoring.HistoryLink `json:"history_links,omitempty"`
	LogoURL      string                `json:"logo_url,omitempty"`
	Warning      string                `json:"warning,omitempty"`
	Fallback     bool                  `json:"fallback"`
}
