// Package outputters dispatches a score report to the configured formatter
// and, when requested, the HTML exporter.
package outputters

import (
	"fmt"
	"time"

	"github.com/dotcommander/geoscore/internal/config"
	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/output"
)

// Outputter handles output formatting.
type Outputter struct {
	config   *config.Config
	exporter output.Exporter
}

// NewOutputter creates a new Outputter with the default HTML exporter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config:   config,
		exporter: output.NewHTMLExporter(),
	}
}

// Format formats the report using the configured format, then runs the
// export when one is configured.
func (o *Outputter) Format(report *engine.Report, format string) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		if err := formatter.Format(report); err != nil {
			return err
		}
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output)
		if err := formatter.Format(report); err != nil {
			return err
		}
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Output)
		if err := formatter.Format(report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if o.config.Export != "" {
		if err := o.exporter.Export(report, o.config.Export); err != nil {
			return fmt.Errorf("error exporting report: %w", err)
		}
	}
	return nil
}
