package outputters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/geoscore/internal/config"
	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

func testReport() *engine.Report {
	return &engine.Report{
		StartTime: time.Now(),
		Snapshots: []engine.Snapshot{{
			URL: "https://acme.com",
			Result: &scoring.Result{
				Brand:        "acme",
				Total:        72,
				Breakdown:    scoring.Breakdown{Recall: 30, Wiki: 20, SEO: 12, Platforms: 10},
				Suggestions:  []string{},
				HistoryLinks: []scoring.HistoryLink{},
			},
		}},
	}
}

func TestFormatUnsupported(t *testing.T) {
	o := NewOutputter(&config.Config{})
	if err := o.Format(testReport(), "xml"); err == nil {
		t.Error("Format(xml) error = nil, want unsupported format error")
	}
}

func TestFormatJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	o := NewOutputter(&config.Config{Output: path})

	if err := o.Format(testReport(), "json"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"brand": "acme"`) {
		t.Errorf("JSON output missing brand: %s", data)
	}
}

func TestFormatWithExport(t *testing.T) {
	dir := t.TempDir()
	o := NewOutputter(&config.Config{
		Output: filepath.Join(dir, "report.md"),
		Export: filepath.Join(dir, "report.html"),
	})

	if err := o.Format(testReport(), "markdown"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "report.html")); err != nil {
		t.Errorf("export file not written: %v", err)
	}
}

func TestFormatSetsStartTime(t *testing.T) {
	report := testReport()
	report.StartTime = time.Time{}

	o := NewOutputter(&config.Config{Output: filepath.Join(t.TempDir(), "r.json")})
	if err := o.Format(report, "json"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if report.StartTime.IsZero() {
		t.Error("StartTime not defaulted")
	}
}
