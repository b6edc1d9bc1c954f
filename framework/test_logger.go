package framework

// TestLogger receives progress notifications as tests run.
//
// TestFinished receives the recorded result, or nil for a group of tests that only ran
// subtests and so was not recorded itself.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, result *TestResult, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                               {}
func (n nullTestLogger) TestError(TestID, error)                          {}
func (n nullTestLogger) TestFinished(TestID, *TestResult, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                       {}
