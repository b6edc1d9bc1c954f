// Package gradingtests contains the tests for the grading backend's HTTP API, and the
// domain-specific test API (T, Session) that they are written against.
//
// Tests run one at a time in a fixed order. Some of them depend on that order: a category
// logs in as one fixture account before its tests run, and a later test may log in as a
// different account, which changes the session for every test after it.
package gradingtests
