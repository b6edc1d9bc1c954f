package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

func DoAuthenticationTests(t *T) {
	loginWithRole := func(role Role) func(*T) {
		return func(t *T) {
			resp, err := t.Session().exchangeCredentials(role.Credentials(), t.context.DebugLogger())
			if err != nil {
				t.Failf("%s", err)
			}
			t.RequireStatus(resp, 200)
			var data servicedef.LoginResponse
			t.RequireJSON(resp, &data)
			if _, actualRole := data.Identity(); actualRole != role.WireName() {
				t.Failf("Expected %s role, got %s", role.WireName(), actualRole)
			}
		}
	}

	t.Run("TEST-AUTH-001: Student login", loginWithRole(Student))

	t.Run("TEST-AUTH-002: Teacher login", loginWithRole(Teacher))

	t.Run("TEST-AUTH-003: Invalid credentials", func(t *T) {
		resp, err := t.Session().exchangeCredentials(Credentials{Username: "invalid", Password: "wrong"},
			t.context.DebugLogger())
		if err != nil {
			t.Failf("%s", err)
		}
		if resp.status != 400 {
			t.Failf("Expected 400, got %d", resp.status)
		}
	})
}
