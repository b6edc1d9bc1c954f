package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    *Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework-level state of a test or a group of tests. It is similar to Go's
// *testing.T: a test reports problems with Errorf, stops early with FailNow or Skip, and can
// run subtests with Run.
//
// Only tests that did not run any subtests are recorded in Results, plus any group that was
// skipped or failed on its own account (for instance, a group whose setup step could not log in).
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	passDetail  string
	hasChildren bool
	errors      []error
}

// Run creates a root context and runs the action with it, recording outcomes into results.
// If results is nil, a new Results is created. The root context itself is never recorded.
func Run(
	results *Results,
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) *Results {
	if results == nil {
		results = NewResults()
	}
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		results:    results,
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return results
}

func (c *Context) run(action func(*Context)) (recorded *TestResult) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		recorded = c.record()
	}()

	action(c)
	return
}

func (c *Context) record() *TestResult {
	if c.id.Depth() == 0 {
		return nil
	}
	results := c.env.results
	name := c.id.Name()
	switch {
	case c.skipped:
		results.RecordSkip(name, c.skipReason)
	case c.failed:
		results.RecordFail(name, c.errorMessage())
	case c.hasChildren:
		return nil
	default:
		if c.passDetail != "" {
			name = fmt.Sprintf("%s (%s)", name, c.passDetail)
		}
		results.RecordPass(name)
	}
	last := results.Tests[len(results.Tests)-1]
	return &last
}

func (c *Context) errorMessage() string {
	messages := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. If the subtest is excluded by the filter, it is reported to the test
// logger as skipped but not recorded in the results.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}
	c.hasChildren = true

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	result := c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// SetPassDetail adds a parenthesized note to the recorded name if the test passes,
// such as "Found 3 courses".
func (c *Context) SetPassDetail(format string, args ...interface{}) {
	c.passDetail = fmt.Sprintf(format, args...)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
