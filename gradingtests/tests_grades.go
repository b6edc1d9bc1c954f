package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

func DoGradeTests(t *T) {
	teacher := t.RequireLogin(Teacher)

	t.Run("TEST-GRADE-001: Get teacher pending grades", func(t *T) {
		teacherID := t.RequireID(teacher)
		resp := t.Get(servicedef.TeacherPendingGradesPath(teacherID), pageQuery("", 0))
		t.RequireStatus(resp, 200)
		grades := t.RequirePage(resp)
		t.PassDetail("Found %d pending", grades.Len())
	})

	t.Run("TEST-GRADE-005: Get student grades", func(t *T) {
		student := t.RequireLogin(Student)
		studentID := t.RequireID(student)
		resp := t.Get(servicedef.StudentGradesPath(studentID), nil)
		t.RequireStatus(resp, 200)
		var grades servicedef.ItemList
		t.RequireJSON(resp, &grades)
		t.PassDetail("Found %d grades", grades.Len())
	})
}
