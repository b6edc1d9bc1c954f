package gradingtests

import (
	"fmt"
	"net/url"
	"time"

	"github.com/launchdarkly/grading-contract-tests/framework"
	"github.com/launchdarkly/grading-contract-tests/servicedef"
)

// SuiteConfig contains the settings that individual tests need beyond the harness itself.
type SuiteConfig struct {
	// FixturesDir is where files used by upload tests are found.
	FixturesDir string

	// UploadWait is how long to wait after creating a submission before checking its status.
	UploadWait time.Duration
}

type environment struct {
	harness *framework.TestHarness
	session *Session
	config  SuiteConfig
}

// T represents a test or subtest in the grading backend test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. Those features are provided by our lower-level framework package.
//
// It also provides functionality that is specific to the grading backend: logging in as one of
// the fixture accounts, and making requests whose transport errors immediately fail the test.
// The login state is shared by every T in the run, in the order the tests run.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it
// were a *testing.T. Most tests use Failf instead, since the failure message is what ends up in
// the report.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Failf logs a test failure and immediately exits the test.
func (t *T) Failf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
	t.context.FailNow()
}

// Skip stops the test and records it as skipped rather than failed. This is used when a
// precondition for the test could not be established.
func (t *T) Skip(reason string) {
	t.context.SkipWithReason(reason)
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// PassDetail adds a note to the test name that is recorded if the test passes.
func (t *T) PassDetail(format string, args ...interface{}) {
	t.context.SetPassDetail(format, args...)
}

func (t *T) Config() SuiteConfig {
	return t.env.config
}

func (t *T) Session() *Session {
	return t.env.session
}

// RequireLogin logs in as the role's fixture account, or skips the test if that fails.
func (t *T) RequireLogin(role Role) Identity {
	identity, err := t.env.session.Login(role, t.context.DebugLogger())
	if err != nil {
		t.Debug("Login failed: %s", err)
		t.Skip(fmt.Sprintf("%s login failed", role))
	}
	return identity
}

// RequireID returns the numeric id of a logged-in user, failing the test if the backend
// did not provide one.
func (t *T) RequireID(identity Identity) int {
	id, ok := identity.ID.Get()
	if !ok {
		t.Failf("Login response did not include a user id")
	}
	return id
}

func (t *T) send(r backendRequest) backendResponse {
	resp, err := t.env.session.client.do(r, t.context.DebugLogger())
	if err != nil {
		t.Failf("%s", err)
	}
	return resp
}

// Get sends a GET request to the backend. A transport error fails the test.
func (t *T) Get(path string, query url.Values) backendResponse {
	return t.send(backendRequest{method: "GET", path: path, query: query})
}

// RequireStatus fails the test if the response did not have the expected status.
func (t *T) RequireStatus(resp backendResponse, expected int) {
	if resp.status != expected {
		t.Failf("Expected status %d, got %d", expected, resp.status)
	}
}

// RequireJSON decodes the response body, failing the test if it does not have the expected
// shape.
func (t *T) RequireJSON(resp backendResponse, target interface{}) {
	if err := resp.decodeJSON(target); err != nil {
		t.Failf("%s", err)
	}
}

// RequirePage decodes a paged list response, failing the test if the body is a bare list
// rather than a page object.
func (t *T) RequirePage(resp backendResponse) servicedef.ItemList {
	var page servicedef.ItemList
	t.RequireJSON(resp, &page)
	if !page.Paged {
		t.Failf("Response is not a paged list")
	}
	return page
}
