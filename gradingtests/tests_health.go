package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

const (
	healthCheckGroup = "System health check"
	healthCheckTitle = "System Health Check"
)

// DoHealthCheck checks that the backend and frontend respond before any other test runs. It
// returns false if the backend is unreachable or unhealthy, in which case the run should stop.
// A frontend problem is recorded but does not stop the run.
func DoHealthCheck(t *T) bool {
	backendHealthy := true

	t.Run(healthCheckGroup, func(t *T) {
		t.Run("Backend health check", func(t *T) {
			backendHealthy = false
			status, err := t.env.harness.QueryStatus(
				t.env.harness.BackendURL(servicedef.PathHealth), healthCheckTimeout, t.context.DebugLogger())
			if err != nil {
				t.Failf("%s", err)
			}
			if status != 200 {
				t.Failf("Status: %d", status)
			}
			backendHealthy = true
		})
		if !backendHealthy {
			return
		}

		t.Run("Frontend health check", func(t *T) {
			status, err := t.env.harness.QueryStatus(
				t.env.harness.FrontendURL("/"), healthCheckTimeout, t.context.DebugLogger())
			if err != nil {
				t.Failf("%s", err)
			}
			if status != 200 {
				t.Failf("Status: %d", status)
			}
		})
	})

	return backendHealthy
}
