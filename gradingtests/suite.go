package gradingtests

import (
	"github.com/launchdarkly/grading-contract-tests/framework"
)

// Category is a group of tests that can be selected by name on the command line.
//
// Name identifies the category's group in results and filters; Title is the heading printed
// above its tests on the console.
type Category struct {
	Key   string
	Name  string
	Title string
	run   func(*T)
}

// AllCategories lists the test categories in the order a full run executes them.
var AllCategories = []Category{
	{Key: "auth", Name: "Authentication tests", Title: "Authentication Tests", run: DoAuthenticationTests},
	{Key: "courses", Name: "Course tests", Title: "Course Management Tests", run: DoCourseTests},
	{Key: "assignments", Name: "Assignment tests", Title: "Assignment Tests", run: DoAssignmentTests},
	{Key: "submissions", Name: "Submission tests", Title: "Submission Workflow Tests", run: DoSubmissionTests},
	{Key: "grades", Name: "Grade tests", Title: "Grade Management Tests", run: DoGradeTests},
	{Key: "appeals", Name: "Appeal tests", Title: "Appeal Tests", run: DoAppealTests},
}

// HeaderTitle returns the console heading for a top-level group name, or the name itself if
// it is not one of ours.
func HeaderTitle(groupName string) string {
	if groupName == healthCheckGroup {
		return healthCheckTitle
	}
	for _, c := range AllCategories {
		if c.Name == groupName {
			return c.Title
		}
	}
	return groupName
}

// FindCategory returns the category with the given key.
func FindCategory(key string) (Category, bool) {
	for _, c := range AllCategories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryKeys returns the keys of all categories, for usage messages.
func CategoryKeys() []string {
	keys := make([]string, 0, len(AllCategories))
	for _, c := range AllCategories {
		keys = append(keys, c.Key)
	}
	return keys
}

// RunOptions controls what RunTestSuite executes.
type RunOptions struct {
	// Categories are run in the given order. If empty, all categories are run.
	Categories []Category

	// HealthCheck runs the system health check first. If the backend is not healthy, nothing
	// else is run and the results are marked as aborted.
	HealthCheck bool

	Filter     framework.Filter
	TestLogger framework.TestLogger
}

// RunTestSuite runs the selected categories sequentially against the backend and returns the
// recorded outcomes.
func RunTestSuite(
	harness *framework.TestHarness,
	config SuiteConfig,
	opts RunOptions,
) *framework.Results {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = AllCategories
	}
	env := &environment{
		harness: harness,
		session: NewSession(harness),
		config:  config,
	}
	results := framework.NewResults()
	framework.Run(results, opts.Filter, opts.TestLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		if opts.HealthCheck && !DoHealthCheck(t) {
			results.Aborted = true
			return
		}
		for _, category := range categories {
			t.Run(category.Name, category.run)
		}
	})
	return results
}
