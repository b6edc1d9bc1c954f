package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/grading-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgMagenta, color.Bold)
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	skipColor   = color.New(color.FgYellow)
)

// ConsoleTestLogger prints a line for each test result, and a header for each category.
// HeaderTitle, if set, maps a top-level group name to the heading printed for it.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	HeaderTitle          func(groupName string) string
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if id.Depth() == 1 {
		title := id.Name()
		if c.HeaderTitle != nil {
			title = c.HeaderTitle(title)
		}
		rule := strings.Repeat("=", 60)
		fmt.Fprintln(c.Out)
		headerColor.Fprintln(c.Out, rule)
		headerColor.Fprintln(c.Out, title)
		headerColor.Fprintln(c.Out, rule)
	}
}

// TestError does nothing; the error text is part of the result printed by TestFinished.
func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, result *framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := false
	if result != nil {
		switch result.Status {
		case framework.StatusPassed:
			passColor.Fprintf(c.Out, "✓ PASSED: %s\n", result.Name)
		case framework.StatusFailed:
			failed = true
			failColor.Fprintf(c.Out, "✗ FAILED: %s\n", result.Name)
			lines := strings.Split(result.Error, "\n")
			failColor.Fprintf(c.Out, "  Error: %s\n", lines[0])
			for _, line := range lines[1:] {
				failColor.Fprintf(c.Out, "    %s\n", line)
			}
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.Out, "⊘ SKIPPED: %s\n", id.Name())
	} else {
		skipColor.Fprintf(c.Out, "⊘ SKIPPED: %s - %s\n", id.Name(), reason)
	}
}
