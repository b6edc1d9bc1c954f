package gradingtests

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/launchdarkly/grading-contract-tests/servicedef"

	"github.com/pkg/errors"
)

// DefaultUploadWait is how long the submission workflow waits for processing by default.
const DefaultUploadWait = time.Second * 3

const (
	submissionFixtureName  = "Anonymization test2.docx"
	submissionContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	submissionAssignmentID = 1
)

func DoSubmissionTests(t *T) {
	fixture := filepath.Join(t.Config().FixturesDir, submissionFixtureName)
	if _, err := os.Stat(fixture); err != nil {
		t.Skip(fmt.Sprintf("Test file not found: %s", fixture))
	}

	student := t.RequireLogin(Student)

	var submissionID int
	created := false
	t.Run("TEST-SUB-001: Upload Word document", func(t *T) {
		studentID := t.RequireID(student)
		upload := &fileUpload{
			fieldName:   "file",
			filePath:    fixture,
			contentType: submissionContentType,
			fields: []formField{
				{name: "studentId", value: strconv.Itoa(studentID)},
				{name: "assignmentId", value: strconv.Itoa(submissionAssignmentID)},
			},
		}
		resp, err := t.Session().client.do(backendRequest{
			method:  "POST",
			path:    servicedef.PathSubmissions,
			upload:  upload,
			timeout: uploadTimeout,
		}, t.context.DebugLogger())
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				t.Skip(fmt.Sprintf("File not found: %s", fixture))
			}
			t.Failf("%s", err)
		}
		if resp.status != 200 {
			t.Failf("Expected status 200, got %d, Response: %s", resp.status, string(resp.body))
		}
		var result servicedef.SubmissionCreated
		t.RequireJSON(resp, &result)
		id, ok := result.SubmissionID.Get()
		if !ok {
			t.Failf("Response did not include a submissionId")
		}
		submissionID, created = id, true
		t.PassDetail("ID: %d", id)
	})
	if !created {
		return
	}

	wait := t.Config().UploadWait
	t.Debug("Waiting %s for submission processing", wait)
	time.Sleep(wait)

	t.Run(fmt.Sprintf("TEST-SUB-003: Get submission %d status", submissionID), func(t *T) {
		resp := t.Get(servicedef.SubmissionStatusPath(submissionID), nil)
		t.RequireStatus(resp, 200)
		var status servicedef.SubmissionStatus
		t.RequireJSON(resp, &status)
		t.PassDetail("Status: %s", status.Status)
	})
}
