package gradingtests

import (
	"net/url"
	"strconv"

	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

const defaultPageSize = 20

// pageQuery is the query for the first page of a paged list, optionally scoped to an owner.
func pageQuery(ownerParam string, ownerID int) url.Values {
	q := url.Values{}
	if ownerParam != "" {
		q.Set(ownerParam, strconv.Itoa(ownerID))
	}
	q.Set("page", "0")
	q.Set("size", strconv.Itoa(defaultPageSize))
	return q
}

func DoAssignmentTests(t *T) {
	teacher := t.RequireLogin(Teacher)

	t.Run("TEST-ASSIGN-002: Get teacher assignments", func(t *T) {
		teacherID := t.RequireID(teacher)
		resp := t.Get(servicedef.PathAssignments, pageQuery("teacherId", teacherID))
		t.RequireStatus(resp, 200)
		assignments := t.RequirePage(resp)
		t.PassDetail("Found %d assignments", assignments.Len())
	})
}
