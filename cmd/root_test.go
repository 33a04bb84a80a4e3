package cmd

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/dotcommander/geoscore/internal/output"
	"github.com/dotcommander/geoscore/internal/stubserver"
)

// withTestEnv points the CLI at a stub scoring service and isolates it from
// any real config files, restoring all package state afterwards.
func withTestEnv(t *testing.T) (apiURL, dir string) {
	t.Helper()

	srv := httptest.NewServer(stubserver.New(nil).Routes())
	t.Cleanup(srv.Close)

	dir = t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	oldAPIBase, oldFormat, oldOutput := apiBase, outputFormat, outputFile
	t.Cleanup(func() {
		os.Chdir(old)
		viper.Reset()
		apiBase, outputFormat, outputFile = oldAPIBase, oldFormat, oldOutput
	})

	return srv.URL + "/api", dir
}

func TestRunScoreAgainstStub(t *testing.T) {
	apiURL, dir := withTestEnv(t)

	apiBase = apiURL
	outputFormat = "json"
	outputFile = filepath.Join(dir, "report.json")
	viper.Set("format", "json")
	viper.Set("output", outputFile)

	if err := runScore([]string{"https://acme.com", "https://acme.com", "https://other.com"}); err != nil {
		t.Fatalf("runScore() error = %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	var report output.JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	// The duplicate URL is suppressed by the engine guard.
	if report.Summary.Sites != 2 {
		t.Errorf("Summary.Sites = %d, want 2", report.Summary.Sites)
	}
	if len(report.Results) != 2 {
		t.Fatalf("Results = %d entries, want 2", len(report.Results))
	}
	if report.Results[0].Brand != "acme" || report.Results[1].Brand != "other" {
		t.Errorf("brands = %q, %q", report.Results[0].Brand, report.Results[1].Brand)
	}
	if report.Results[0].Warning != "" {
		t.Errorf("Warning = %q, want empty against healthy stub", report.Results[0].Warning)
	}
}

func TestRunScoreFallbackWhenServiceDown(t *testing.T) {
	_, dir := withTestEnv(t)

	// An unreachable port forces the fallback path; the signal checks point
	// at closed ports too so the test never leaves the host.
	apiBase = "http://127.0.0.1:1/api"
	outputFormat = "json"
	outputFile = filepath.Join(dir, "report.json")
	viper.Set("format", "json")
	viper.Set("output", outputFile)
	viper.Set("wikiBase", "http://127.0.0.1:1/?titles=")
	viper.Set("relayBase", "http://127.0.0.1:1/raw?url=")

	if err := runScore([]string{"https://acme.com"}); err != nil {
		t.Fatalf("runScore() error = %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	var report output.JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatal(err)
	}

	if len(report.Results) != 1 {
		t.Fatalf("Results = %d entries, want 1", len(report.Results))
	}
	res := report.Results[0]
	if !res.Fallback || res.Warning == "" {
		t.Errorf("result = %+v, want fallback with warning", res)
	}
	if res.Total != res.Breakdown.Sum() {
		t.Errorf("fallback Total = %d, breakdown sum = %d", res.Total, res.Breakdown.Sum())
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "config"} {
		if !names[want] {
			t.Errorf("subcommand %q not registered", want)
		}
	}
}
