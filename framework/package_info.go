// Package framework contains the low-level implementation of test harness infrastructure
// that is independent of what the services under test actually do.
//
// The general model is:
//
// 1. The test harness talks to one or more externally running HTTP services, identified by
// base URLs, through a single HTTP client that keeps cookies between requests.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to report
// that they passed, failed or were skipped.
//
// 3. Every outcome is recorded in a Results value, which can be summarized on the console
// and serialized as a JSON report.
//
// The domain-specific code that knows what is being tested is responsible for making the
// requests, checking the responses, and providing a domain-specific test API on top of the
// test context.
package framework
