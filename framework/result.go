package framework

import (
	"strings"
	"time"
)

// Status is the outcome of a single test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Results accumulates the outcomes of a test run in the order they were recorded.
//
// The counters are updated together with the outcome list, so Total always equals
// Passed+Failed+Skipped. Results is not safe for concurrent use; tests run sequentially.
type Results struct {
	Tests     []TestResult
	Failures  []TestResult
	Total     int
	Passed    int
	Failed    int
	Skipped   int
	StartTime time.Time
	Aborted   bool
}

type TestResult struct {
	Name   string
	Status Status
	Error  string // set for failed tests
	Reason string // set for skipped tests
}

// NewResults creates an empty Results whose duration is measured from now.
func NewResults() *Results {
	return &Results{StartTime: time.Now()}
}

func (r *Results) RecordPass(name string) {
	r.add(TestResult{Name: name, Status: StatusPassed})
	r.Passed++
}

func (r *Results) RecordFail(name string, errorMessage string) {
	result := TestResult{Name: name, Status: StatusFailed, Error: errorMessage}
	r.add(result)
	r.Failures = append(r.Failures, result)
	r.Failed++
}

func (r *Results) RecordSkip(name string, reason string) {
	r.add(TestResult{Name: name, Status: StatusSkipped, Reason: reason})
	r.Skipped++
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	r.Total++
}

func (r *Results) OK() bool {
	return r.Failed == 0
}

// Summary is a point-in-time view of the run counters.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	PassRate float64
	Duration time.Duration
}

// Summary computes the counters, pass rate and the time elapsed since the run started.
func (r *Results) Summary() Summary {
	return Summary{
		Total:    r.Total,
		Passed:   r.Passed,
		Failed:   r.Failed,
		Skipped:  r.Skipped,
		PassRate: passRate(r.Passed, r.Total),
		Duration: time.Since(r.StartTime),
	}
}

func passRate(passed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name is the last path element, which is what gets recorded in results.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Depth is 0 for the root context, 1 for a top-level category, and so on.
func (t TestID) Depth() int {
	return len(t.Path)
}
