package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

func sampleReport() *engine.Report {
	return &engine.Report{
		StartTime: time.Now(),
		Snapshots: []engine.Snapshot{
			{
				URL:     "https://acme.com",
				LogoURL: "https://www.google.com/s2/favicons?domain=acme.com&sz=128",
				Result: &scoring.Result{
					Brand: "acme",
					Total: 72,
					Breakdown: scoring.Breakdown{
						Recall: 30, Wiki: 20, SEO: 12, Platforms: 10,
					},
					Suggestions: []string{"Add an FAQ page"},
					HistoryLinks: []scoring.HistoryLink{
						{URL: "https://acme.com/report/1", Title: "February"},
						{URL: "https://acme.com/report/2"},
					},
				},
			},
			{
				URL:      "https://degraded.example",
				Warning:  "quota exceeded",
				Fallback: true,
				Result: &scoring.Result{
					Brand:        "degraded",
					Total:        45,
					Breakdown:    scoring.Breakdown{Recall: 15, Wiki: 0, SEO: 18, Platforms: 12},
					Suggestions:  []string{},
					HistoryLinks: []scoring.HistoryLink{},
				},
			},
		},
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(false, false)
	f.colorize = false
	f.w = &buf

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"acme",
		"GEO score: 72/100 (B)",
		"recall",
		"platforms",
		"💡 Add an FAQ page",
		"↗ February — https://acme.com/report/1",
		"↗ https://acme.com/report/2",
		"⚠ quota exceeded",
		"showing local estimate",
		"2 site(s) scored, 1 via local estimate",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleFormatQuiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(true, false)
	f.colorize = false
	f.w = &buf

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "acme: 72 (B)") {
		t.Errorf("quiet output missing score line:\n%s", out)
	}
	if strings.Contains(out, "recall") || strings.Contains(out, "💡") {
		t.Errorf("quiet output includes breakdown detail:\n%s", out)
	}
}

func TestConsoleFormatEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(false, false)
	f.colorize = false
	f.w = &buf

	if err := f.Format(&engine.Report{StartTime: time.Now()}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No sites scored") {
		t.Errorf("empty report output = %q", buf.String())
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		value, max int
		wantFilled int
	}{
		{"Empty", 0, 20, 0},
		{"Half", 10, 20, 10},
		{"Full", 20, 20, 20},
		{"Over max clamps", 30, 20, 20},
		{"Negative clamps", -5, 20, 0},
		{"Zero max", 5, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.value, tt.max)
			filled := strings.Count(bar, "█")
			if filled != tt.wantFilled {
				t.Errorf("renderBar(%d, %d) filled = %d, want %d", tt.value, tt.max, filled, tt.wantFilled)
			}
			if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 20 {
				t.Errorf("bar width = %d, want 20", n)
			}
		})
	}
}
