package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	f := NewJSONFormatter(true, path)

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var report JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if report.Header.Tool != "geoscore" {
		t.Errorf("Header.Tool = %q, want geoscore", report.Header.Tool)
	}
	if report.Summary.Sites != 2 || report.Summary.Fallbacks != 1 {
		t.Errorf("Summary = %+v, want 2 sites / 1 fallback", report.Summary)
	}
	if len(report.Results) != 2 {
		t.Fatalf("Results = %d entries, want 2", len(report.Results))
	}

	first := report.Results[0]
	if first.Brand != "acme" || first.Total != 72 || first.Tier != "B" {
		t.Errorf("first result = %+v", first)
	}
	if len(first.HistoryLinks) != 2 {
		t.Errorf("first result history links = %+v", first.HistoryLinks)
	}

	second := report.Results[1]
	if second.Warning != "quota exceeded" || !second.Fallback {
		t.Errorf("second result = %+v, want warning with fallback", second)
	}
}
