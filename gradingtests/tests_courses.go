package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

func DoCourseTests(t *T) {
	t.RequireLogin(Admin)

	t.Run("TEST-COURSE-002: Get all courses", func(t *T) {
		resp := t.Get(servicedef.PathCourses, nil)
		t.RequireStatus(resp, 200)
		var courses servicedef.ItemList
		if err := resp.decodeJSON(&courses); err != nil || courses.Paged {
			t.Failf("Response is not a list")
		}
		t.PassDetail("Found %d courses", courses.Len())
	})
}
