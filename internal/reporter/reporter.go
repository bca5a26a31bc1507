// Package reporter renders scan results for the terminal or for files.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dhqdev/limpeza-david/internal/scanner"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatSummary OutputFormat = "summary"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// CategoryResult pairs a category with its scan result, preserving the
// fixed category order.
type CategoryResult struct {
	Category scanner.Category    `json:"category" yaml:"category"`
	Result   *scanner.ScanResult `json:"result" yaml:"result"`
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{writer: writer, format: format}
}

// Report renders the per-category scan results.
func (r *Reporter) Report(results []CategoryResult) error {
	switch r.format {
	case FormatSummary:
		return r.reportSummary(results)
	case FormatTable:
		return r.reportTable(results)
	case FormatJSON:
		return r.reportJSON(results)
	case FormatYAML:
		return r.reportYAML(results)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func totals(results []CategoryResult) (int, int64) {
	var count int
	var size int64
	for _, cr := range results {
		count += cr.Result.Count()
		size += cr.Result.TotalSize
	}
	return count, size
}

func (r *Reporter) reportSummary(results []CategoryResult) error {
	count, size := totals(results)

	fmt.Fprintf(r.writer, "=== Scan Summary ===\n")
	fmt.Fprintf(r.writer, "Total Files: %d\n", count)
	fmt.Fprintf(r.writer, "Total Size: %s\n\n", humanize.Bytes(uint64(size)))

	for _, cr := range results {
		fmt.Fprintf(r.writer, "  %s %-22s %6d files  %s\n",
			cr.Category.Icon, cr.Category.Name,
			cr.Result.Count(), humanize.Bytes(uint64(cr.Result.TotalSize)))
	}

	return nil
}

func (r *Reporter) reportTable(results []CategoryResult) error {
	fmt.Fprintf(r.writer, "%-70s | %-10s | %s\n", "Path", "Size", "Modified")

	for _, cr := range results {
		for _, file := range cr.Result.Files {
			path := file.Path
			if len(path) > 70 {
				path = "..." + path[len(path)-67:]
			}
			fmt.Fprintf(r.writer, "%-70s | %-10s | %s\n",
				path,
				humanize.Bytes(uint64(file.Size)),
				file.ModTime.Format("2006-01-02 15:04:05"))
		}
	}

	count, size := totals(results)
	fmt.Fprintf(r.writer, "\nTotal: %d files, %s\n", count, humanize.Bytes(uint64(size)))

	return nil
}

type report struct {
	Timestamp  string           `json:"timestamp" yaml:"timestamp"`
	TotalFiles int              `json:"total_files" yaml:"total_files"`
	TotalSize  int64            `json:"total_size" yaml:"total_size"`
	Categories []CategoryResult `json:"categories" yaml:"categories"`
}

func buildReport(results []CategoryResult) report {
	count, size := totals(results)
	return report{
		Timestamp:  time.Now().Format(time.RFC3339),
		TotalFiles: count,
		TotalSize:  size,
		Categories: results,
	}
}

func (r *Reporter) reportJSON(results []CategoryResult) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildReport(results))
}

func (r *Reporter) reportYAML(results []CategoryResult) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(buildReport(results))
}
