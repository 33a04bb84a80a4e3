package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// MarkdownFormatter formats a report as a markdown document.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format formats the report as markdown.
func (f *MarkdownFormatter) Format(report *engine.Report) error {
	var sb strings.Builder

	sb.WriteString("# GEO Score Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))

	for _, snap := range report.Snapshots {
		res := snap.Result
		if res == nil {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", res.Brand))
		sb.WriteString(fmt.Sprintf("URL: %s\n\n", snap.URL))
		if snap.Warning != "" {
			sb.WriteString(fmt.Sprintf("> ⚠ %s — showing local estimate\n\n", snap.Warning))
		}
		sb.WriteString(fmt.Sprintf("**GEO score: %d/100 (%s)**\n\n", res.Total, scoring.Tier(res.Total)))

		sb.WriteString("| Category | Score |\n")
		sb.WriteString("|----------|-------|\n")
		sb.WriteString(fmt.Sprintf("| recall | %d |\n", res.Breakdown.Recall))
		sb.WriteString(fmt.Sprintf("| wiki | %d |\n", res.Breakdown.Wiki))
		sb.WriteString(fmt.Sprintf("| seo | %d |\n", res.Breakdown.SEO))
		sb.WriteString(fmt.Sprintf("| platforms | %d |\n", res.Breakdown.Platforms))
		sb.WriteString("\n")

		if len(res.Suggestions) > 0 {
			sb.WriteString("### Suggestions\n\n")
			for _, s := range res.Suggestions {
				sb.WriteString(fmt.Sprintf("- %s\n", s))
			}
			sb.WriteString("\n")
		}

		if len(res.HistoryLinks) > 0 {
			sb.WriteString("### History\n\n")
			for _, link := range res.HistoryLinks {
				title := link.Title
				if title == "" {
					title = link.URL
				}
				sb.WriteString(fmt.Sprintf("- [%s](%s)\n", title, link.URL))
			}
			sb.WriteString("\n")
		}
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(sb.String())
	return nil
}
