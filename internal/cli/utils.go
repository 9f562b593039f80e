// Package cli provides CLI output utilities for matome.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/matome/internal/models"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat maps a --output flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// WriteLabels writes one cluster label per line in record order.
// Unassigned records are written as -1.
func WriteLabels(w io.Writer, labels []int) error {
	for _, label := range labels {
		if _, err := fmt.Fprintf(w, "%d\n", label); err != nil {
			return err
		}
	}
	return nil
}

// WriteFindResults writes find results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteFindResults(w io.Writer, response *models.FindResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeFindResultsText(w, response)
		return nil
	}
}

func writeFindResultsText(w io.Writer, response *models.FindResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms", response.Total, response.QueryTime)
	if response.RunID != "" {
		fmt.Fprintf(w, " (labels from run %s)", response.RunID)
	}
	fmt.Fprint(w, "\n\n")
	for _, result := range response.Results {
		writeOneResult(w, result)
	}
}

func writeOneResult(w io.Writer, result *models.FindResult) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	label := "unassigned"
	if result.Label >= 0 {
		label = fmt.Sprintf("%d", result.Label)
	}
	fmt.Fprintf(w, "Rank: %d | Score: %.4f | Cluster: %s\n", result.Rank, result.Score, label)
	fmt.Fprintf(w, "ID: %s\n", result.Document.ID)
	if result.Document.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", result.Document.Title)
	}
	fmt.Fprintf(w, "\n%s\n", Truncate(result.Document.Content, 200))
	fmt.Fprintln(w)
}

// runReport is the JSON shape of a corpus-mode clustering run report.
type runReport struct {
	Run      *models.Run             `json:"run"`
	Clusters []models.ClusterSummary `json:"clusters"`
}

// WriteRunReport writes a corpus clustering run and its cluster summaries
// to w in the given format.
func WriteRunReport(w io.Writer, run *models.Run, clusters []models.ClusterSummary, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runReport{Run: run, Clusters: clusters})
	default:
		writeRunReportText(w, run, clusters)
		return nil
	}
}

func writeRunReportText(w io.Writer, run *models.Run, clusters []models.ClusterSummary) {
	fmt.Fprintf(w, "Run %s\n", run.ID)
	fmt.Fprintf(w, "  epsilon=%.4f min_points=%d representatives=%d\n",
		run.Params.Epsilon, run.Params.MinPoints, run.Params.Representatives)
	WriteStats(w, run.Stats)
	if len(clusters) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, c := range clusters {
		fmt.Fprintf(w, "  cluster %d: %d document(s)", c.ID, c.Size)
		if len(c.TopTerms) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(c.TopTerms, ", "))
		}
		fmt.Fprintln(w)
	}
}

// WriteStats writes run statistics in text form.
func WriteStats(w io.Writer, stats models.RunStats) {
	fmt.Fprintf(w, "  documents:  %d\n", stats.Documents)
	fmt.Fprintf(w, "  clusters:   %d\n", stats.Clusters)
	fmt.Fprintf(w, "  core:       %d\n", stats.CorePoints)
	fmt.Fprintf(w, "  border:     %d\n", stats.BorderPoints)
	fmt.Fprintf(w, "  noise:      %d\n", stats.NoisePoints)
	fmt.Fprintf(w, "  unassigned: %d\n", stats.Unassigned)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
