package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	e := NewHTMLExporter()

	if err := e.Export(sampleReport(), path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"acme",
		"72/100 (B)",
		"quota exceeded",
		`<a href="https://acme.com/report/1">February</a>`,
		`<a href="https://acme.com/report/2">https://acme.com/report/2</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML export missing %q", want)
		}
	}
}

func TestHTMLExportEscapesContent(t *testing.T) {
	report := sampleReport()
	report.Snapshots[0].Result.Suggestions = []string{`<script>alert(1)</script>`}

	path := filepath.Join(t.TempDir(), "report.html")
	if err := NewHTMLExporter().Export(report, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "<script>alert(1)</script>") {
		t.Error("suggestion content not HTML-escaped")
	}
}

func TestHTMLExportBadPath(t *testing.T) {
	if err := NewHTMLExporter().Export(sampleReport(), filepath.Join(t.TempDir(), "missing", "report.html")); err == nil {
		t.Error("Export() to missing directory error = nil, want error")
	}
}
