package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report is the JSON document saved at the end of a run.
type Report struct {
	RunID           string        `json:"run_id"`
	Timestamp       string        `json:"timestamp"`
	Category        string        `json:"category,omitempty"`
	Aborted         bool          `json:"aborted,omitempty"`
	Total           int           `json:"total"`
	Passed          int           `json:"passed"`
	Failed          int           `json:"failed"`
	Skipped         int           `json:"skipped"`
	PassRate        float64       `json:"pass_rate"`
	DurationSeconds float64       `json:"duration_seconds"`
	Errors          []ReportError `json:"errors"`
}

// ReportError is one failed test, in the order the failures were recorded.
type ReportError struct {
	Test  string `json:"test"`
	Error string `json:"error"`
}

// Report serializes the current state of the run. The category is empty for a full run.
func (r *Results) Report(category string) Report {
	summary := r.Summary()
	report := Report{
		RunID:           uuid.New().String(),
		Timestamp:       time.Now().Format(time.RFC3339Nano),
		Category:        category,
		Aborted:         r.Aborted,
		Total:           summary.Total,
		Passed:          summary.Passed,
		Failed:          summary.Failed,
		Skipped:         summary.Skipped,
		PassRate:        summary.PassRate,
		DurationSeconds: summary.Duration.Seconds(),
		Errors:          make([]ReportError, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		report.Errors = append(report.Errors, ReportError{Test: f.Name, Error: f.Error})
	}
	return report
}

// WriteReportFile writes the report as indented JSON, replacing any existing file.
func WriteReportFile(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write report to %s: %w", path, err)
	}
	return nil
}
