package framework

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCountersConsistent(t *testing.T, r *Results, expectedTotal int) {
	assert.Equal(t, expectedTotal, r.Total)
	assert.Equal(t, r.Total, r.Passed+r.Failed+r.Skipped)
	assert.Len(t, r.Tests, r.Total)
	assert.Len(t, r.Failures, r.Failed)
}

func TestCountersStayConsistentAfterEachRecord(t *testing.T) {
	r := NewResults()
	requireCountersConsistent(t, r, 0)

	r.RecordPass("a")
	requireCountersConsistent(t, r, 1)
	r.RecordFail("b", "Status: 500")
	requireCountersConsistent(t, r, 2)
	r.RecordSkip("c", "Admin login failed")
	requireCountersConsistent(t, r, 3)
	r.RecordFail("d", "boom")
	requireCountersConsistent(t, r, 4)

	assert.Equal(t, 1, r.Passed)
	assert.Equal(t, 2, r.Failed)
	assert.Equal(t, 1, r.Skipped)
	assert.False(t, r.OK())
}

func TestRecordedOutcomesKeepOrderAndDetails(t *testing.T) {
	r := NewResults()
	r.RecordSkip("Course tests", "Admin login failed")
	r.RecordPass("x")
	r.RecordFail("y", "Expected 400, got 200")

	assert.Equal(t, []TestResult{
		{Name: "Course tests", Status: StatusSkipped, Reason: "Admin login failed"},
		{Name: "x", Status: StatusPassed},
		{Name: "y", Status: StatusFailed, Error: "Expected 400, got 200"},
	}, r.Tests)
}

func TestPassRateIsZeroWithNoTests(t *testing.T) {
	r := NewResults()
	s := r.Summary()
	assert.Equal(t, 0.0, s.PassRate)
	assert.Equal(t, 0, s.Total)
	assert.True(t, r.OK())
}

func TestPassRate(t *testing.T) {
	r := NewResults()
	r.RecordPass("a")
	r.RecordPass("b")
	r.RecordPass("c")
	r.RecordSkip("d", "")
	assert.Equal(t, 75.0, r.Summary().PassRate)

	r.RecordFail("e", "x")
	r.RecordFail("f", "x")
	r.RecordFail("g", "x")
	r.RecordFail("h", "x")
	assert.Equal(t, 37.5, r.Summary().PassRate)
}

func TestSummaryDurationIsMeasuredFromStart(t *testing.T) {
	r := &Results{StartTime: time.Now().Add(-time.Minute)}
	assert.GreaterOrEqual(t, r.Summary().Duration, time.Minute)
}

func TestReportListsOnlyFailuresInOrder(t *testing.T) {
	r := NewResults()
	r.RecordFail("first", "error 1")
	r.RecordPass("passing")
	r.RecordSkip("skipped", "reason")
	r.RecordFail("second", "error 2")

	report := r.Report("grades")
	assert.Equal(t, "grades", report.Category)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 25.0, report.PassRate)
	assert.Equal(t, []ReportError{
		{Test: "first", Error: "error 1"},
		{Test: "second", Error: "error 2"},
	}, report.Errors)
	assert.NotEmpty(t, report.RunID)
	_, err := time.Parse(time.RFC3339Nano, report.Timestamp)
	assert.NoError(t, err)
}

func TestWriteReportFileOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_report.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than nothing"), 0644))

	r := NewResults()
	r.Aborted = true
	r.RecordFail("Backend health check", "Status: 503")
	require.NoError(t, WriteReportFile(path, r.Report("")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, 1.0, fields["total"])
	assert.Equal(t, 1.0, fields["failed"])
	assert.Equal(t, 0.0, fields["pass_rate"])
	assert.Equal(t, true, fields["aborted"])
	assert.NotContains(t, fields, "category")
	assert.Equal(t, []interface{}{
		map[string]interface{}{"test": "Backend health check", "error": "Status: 503"},
	}, fields["errors"])
}

func TestReportWithNoFailuresHasEmptyErrorList(t *testing.T) {
	r := NewResults()
	r.RecordPass("a")
	data, err := json.Marshal(r.Report(""))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"errors":[]`)
}
