// Package servicedef describes the HTTP API of the grading backend as far as the test
// harness uses it: request paths, request bodies and the response shapes we decode.
package servicedef

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	PathHealth      = "/actuator/health"
	PathLogin       = "/api/auth/login"
	PathCourses     = "/api/courses"
	PathAssignments = "/api/assignments"
	PathSubmissions = "/api/submissions"
)

// Role names as the backend spells them.
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

func SubmissionStatusPath(submissionID int) string {
	return fmt.Sprintf("%s/%d/status", PathSubmissions, submissionID)
}

func TeacherPendingGradesPath(teacherID int) string {
	return fmt.Sprintf("/api/grades/teacher/%d/pending", teacherID)
}

func StudentGradesPath(studentID int) string {
	return fmt.Sprintf("/api/grades/student/%d", studentID)
}

func StudentAppealsPath(studentID int) string {
	return fmt.Sprintf("/api/appeals/student/%d", studentID)
}

func TeacherPendingAppealsPath(teacherID int) string {
	return fmt.Sprintf("/api/appeals/teacher/%d/pending", teacherID)
}

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse accepts both the flat {id, role} shape and the {success, user: {...}}
// envelope. Use Identity to read whichever one was provided.
type LoginResponse struct {
	ID      ldvalue.OptionalInt `json:"id"`
	Role    string              `json:"role"`
	Success ldvalue.Value       `json:"success"`
	Error   string              `json:"error,omitempty"`
	User    *UserInfo           `json:"user,omitempty"`
}

type UserInfo struct {
	ID        ldvalue.OptionalInt `json:"id"`
	Username  string              `json:"username"`
	Email     string              `json:"email"`
	FullName  string              `json:"fullName"`
	Role      string              `json:"role"`
	StudentID string              `json:"studentId,omitempty"`
}

// Identity returns the user id and role, preferring the top-level fields.
func (r LoginResponse) Identity() (ldvalue.OptionalInt, string) {
	id, role := r.ID, r.Role
	if r.User != nil {
		if !id.IsDefined() {
			id = r.User.ID
		}
		if role == "" {
			role = r.User.Role
		}
	}
	return id, role
}

type SubmissionCreated struct {
	SubmissionID ldvalue.OptionalInt `json:"submissionId"`
	Message      string              `json:"message,omitempty"`
}

type SubmissionStatus struct {
	SubmissionID ldvalue.OptionalInt `json:"submissionId"`
	Status       string              `json:"status"`
}

// ItemList is a collection returned by a list endpoint. The backend returns some collections
// as a bare JSON array and others as a page object whose items are in "content"; both decode
// into ItemList, and Paged tells which one it was. A page without "content" is empty.
type ItemList struct {
	Items         []ldvalue.Value
	Paged         bool
	TotalElements ldvalue.OptionalInt
}

var errNotACollection = errors.New("response is neither a list nor a page object")

func (l *ItemList) UnmarshalJSON(data []byte) error {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = ItemList{}
	switch v.Type() {
	case ldvalue.ArrayType:
		l.Items = valueItems(v)
	case ldvalue.ObjectType:
		l.Paged = true
		content := v.GetByKey("content")
		switch content.Type() {
		case ldvalue.ArrayType:
			l.Items = valueItems(content)
		case ldvalue.NullType:
		default:
			return fmt.Errorf("page content is not a list: %s", content.JSONString())
		}
		if total := v.GetByKey("totalElements"); total.IsInt() {
			l.TotalElements = ldvalue.NewOptionalInt(total.IntValue())
		}
	default:
		return errNotACollection
	}
	return nil
}

func (l ItemList) Len() int {
	return len(l.Items)
}

func valueItems(array ldvalue.Value) []ldvalue.Value {
	items := make([]ldvalue.Value, 0, array.Count())
	for i := 0; i < array.Count(); i++ {
		items = append(items, array.GetByIndex(i))
	}
	return items
}
