// Package output renders score reports: a styled console scorecard, JSON
// and markdown report files, and a printable HTML export.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/scoring"
)

// ConsoleFormatter formats a report for console display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	w        io.Writer
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to stdout.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
		w:        os.Stdout,
	}
}

// categoryRow is one breakdown line of the scorecard. Max values are the
// display scale; the remote service's totals are trusted and may use the
// full 0-100 range.
type categoryRow struct {
	label string
	value int
	max   int
}

// Format renders each scorecard followed by a run summary.
func (f *ConsoleFormatter) Format(report *engine.Report) error {
	if f.quiet {
		for _, snap := range report.Snapshots {
			if snap.Result == nil {
				continue
			}
			fmt.Fprintf(f.w, "%s: %d (%s)\n", snap.Result.Brand, snap.Result.Total, scoring.Tier(snap.Result.Total))
		}
		return nil
	}

	for _, snap := range report.Snapshots {
		f.printScorecard(snap)
	}
	f.printSummary(report)
	return nil
}

// printScorecard renders one site's scorecard.
func (f *ConsoleFormatter) printScorecard(snap engine.Snapshot) {
	res := snap.Result
	if res == nil {
		return
	}

	headerStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if f.colorize {
		headerStyle = headerStyle.Bold(true)
		dimStyle = dimStyle.Foreground(lipgloss.Color("7")) // gray
	}

	fmt.Fprintf(f.w, "\n%s %s\n", headerStyle.Render(res.Brand), dimStyle.Render(snap.URL))
	if f.verbose && snap.LogoURL != "" {
		fmt.Fprintf(f.w, "  logo: %s\n", snap.LogoURL)
	}

	if snap.Warning != "" {
		warnStyle := lipgloss.NewStyle()
		if f.colorize {
			warnStyle = warnStyle.Foreground(lipgloss.Color("3")) // yellow
		}
		fmt.Fprintf(f.w, "  %s %s\n", warnStyle.Render("⚠"), snap.Warning)
		fmt.Fprintf(f.w, "  %s\n", dimStyle.Render("showing local estimate"))
	}

	fmt.Fprintf(f.w, "  %s\n", f.renderTotal(res.Total))

	rows := []categoryRow{
		{"recall", res.Breakdown.Recall, 40},
		{"wiki", res.Breakdown.Wiki, 20},
		{"seo", res.Breakdown.SEO, 20},
		{"platforms", res.Breakdown.Platforms, 20},
	}
	for _, row := range rows {
		fmt.Fprintf(f.w, "  %-9s %s %d\n", row.label, renderBar(row.value, row.max), row.value)
	}

	for _, s := range res.Suggestions {
		fmt.Fprintf(f.w, "  💡 %s\n", s)
	}
	for _, link := range res.HistoryLinks {
		if link.Title != "" {
			fmt.Fprintf(f.w, "  ↗ %s — %s\n", link.Title, link.URL)
		} else {
			fmt.Fprintf(f.w, "  ↗ %s\n", link.URL)
		}
	}
}

// renderTotal styles the total score with its tier color.
func (f *ConsoleFormatter) renderTotal(total int) string {
	text := fmt.Sprintf("GEO score: %d/100 (%s)", total, scoring.Tier(total))
	if !f.colorize {
		return text
	}

	var style lipgloss.Style
	switch {
	case total >= 70:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	case total >= 50:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow
	default:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // red
	}
	return style.Render(text)
}

// renderBar draws a fixed-width bar for value out of max.
func renderBar(value, max int) string {
	const width = 20
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// printSummary prints the run summary line.
func (f *ConsoleFormatter) printSummary(report *engine.Report) {
	if len(report.Snapshots) == 0 {
		fmt.Fprintln(f.w, "No sites scored")
		return
	}

	fallbacks := 0
	for _, snap := range report.Snapshots {
		if snap.Fallback {
			fallbacks++
		}
	}

	duration := time.Since(report.StartTime)
	fmt.Fprintf(f.w, "\n%d site(s) scored, %d via local estimate (%v)\n",
		len(report.Snapshots), fallbacks, duration.Round(time.Millisecond))
}
