package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

func DoAppealTests(t *T) {
	student := t.RequireLogin(Student)

	t.Run("TEST-APPEAL-002: Get student appeals", func(t *T) {
		studentID := t.RequireID(student)
		resp := t.Get(servicedef.StudentAppealsPath(studentID), nil)
		t.RequireStatus(resp, 200)
		var appeals servicedef.ItemList
		t.RequireJSON(resp, &appeals)
		t.PassDetail("Found %d appeals", appeals.Len())
	})

	t.Run("TEST-APPEAL-003: Get teacher pending appeals", func(t *T) {
		teacher := t.RequireLogin(Teacher)
		teacherID := t.RequireID(teacher)
		resp := t.Get(servicedef.TeacherPendingAppealsPath(teacherID), nil)
		t.RequireStatus(resp, 200)
		var appeals servicedef.ItemList
		t.RequireJSON(resp, &appeals)
		t.PassDetail("Found %d pending", appeals.Len())
	})
}
