package output

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// Exporter writes a rendered report to a file for sharing or printing.
// Export-to-document is a capability injected at the outputters layer, not
// part of the scoring core.
type Exporter interface {
	Export(report *engine.Report, path string) error
}

// HTMLExporter renders a self-contained HTML document suitable for printing
// to PDF from any browser.
type HTMLExporter struct{}

// NewHTMLExporter creates a new HTMLExporter.
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

const htmlReport = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>GEO Score Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 48rem; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .3rem; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1rem 1.5rem; margin: 1rem 0; page-break-inside: avoid; }
.brand { font-size: 1.3rem; font-weight: 600; }
.brand img { height: 1.2rem; vertical-align: text-bottom; margin-right: .4rem; }
.url { color: #666; font-size: .85rem; }
.total { font-size: 2rem; font-weight: 700; margin: .5rem 0; }
.warning { background: #fff6e0; border-left: 4px solid #e0a800; padding: .4rem .8rem; margin: .5rem 0; }
table { border-collapse: collapse; margin: .5rem 0; }
td, th { border: 1px solid #ddd; padding: .3rem .8rem; text-align: left; }
ul { margin: .3rem 0; }
.meta { color: #999; font-size: .8rem; margin-top: 2rem; }
</style>
</head>
<body>
<h1>GEO Score Report</h1>
{{range .Cards}}
<div class="card">
  <div class="brand">{{if .LogoURL}}<img src="{{.LogoURL}}" alt="">{{end}}{{.Brand}}</div>
  <div class="url">{{.URL}}</div>
  {{if .Warning}}<div class="warning">{{.Warning}} — showing local estimate</div>{{end}}
  <div class="total">{{.Total}}/100 ({{.Tier}})</div>
  <table>
    <tr><th>Category</th><th>Score</th></tr>
    <tr><td>recall</td><td>{{.Breakdown.Recall}}</td></tr>
    <tr><td>wiki</td><td>{{.Breakdown.Wiki}}</td></tr>
    <tr><td>seo</td><td>{{.Breakdown.SEO}}</td></tr>
    <tr><td>platforms</td><td>{{.Breakdown.Platforms}}</td></tr>
  </table>
  {{if .Suggestions}}<ul>{{range .Suggestions}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{if .HistoryLinks}}<ul>{{range .HistoryLinks}}<li><a href="{{.URL}}">{{if .Title}}{{.Title}}{{else}}{{.URL}}{{end}}</a></li>{{end}}</ul>{{end}}
</div>
{{end}}
<div class="meta">Generated by geoscore at {{.Generated}}</div>
</body>
</html>
`

var htmlReportTmpl = template.Must(template.New("report").Parse(htmlReport))

// htmlCard is the template model for one scorecard.
type htmlCard struct {
	Brand        string
	URL          string
	LogoURL      string
	Warning      string
	Total        int
	Tier         string
	Breakdown    scoring.Breakdown
	Suggestions  []string
	HistoryLinks []scoring.HistoryLink
}

// Export writes the report as a standalone HTML document to path.
func (e *HTMLExporter) Export(report *engine.Report, path string) error {
	model := struct {
		Cards     []htmlCard
		Generated string
	}{
		Generated: time.Now().Format(time.RFC3339),
	}

	for _, snap := range report.Snapshots {
		if snap.Result == nil {
			continue
		}
		model.Cards = append(model.Cards, htmlCard{
			Brand:        snap.Result.Brand,
			URL:          snap.URL,
			LogoURL:      snap.LogoURL,
			Warning:      snap.Warning,
			Total:        snap.Result.Total,
			Tier:         scoring.Tier(snap.Result.Total),
			Breakdown:    snap.Result.Breakdown,
			Suggestions:  snap.Result.Suggestions,
			HistoryLinks: snap.Result.HistoryLinks,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file %s: %w", path, err)
	}
	defer f.Close()

	if err := htmlReportTmpl.Execute(f, model); err != nil {
		return fmt.Errorf("error rendering export: %w", err)
	}
	return nil
}
