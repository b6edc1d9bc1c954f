package main

import (
	"fmt"
	"io"
	"os"

	"github.com/launchdarkly/grading-contract-tests/framework"
	"github.com/launchdarkly/grading-contract-tests/gradingtests"

	"github.com/fatih/color"
)

// Exit codes. A single-category run only reports test failures through its exit code if
// -strict-exit is set.
const (
	exitSuccess     = 0
	exitTestFailure = 1
	exitRuntimeErr  = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	var params commandParams
	if !params.Read(args, errOut) {
		return exitRuntimeErr
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.NewWriterLogger(out, "")
	}

	harness, err := framework.NewTestHarness(
		params.config.backendURL,
		params.config.frontendURL,
		mainDebugLogger,
	)
	if err != nil {
		fmt.Fprintf(errOut, "Test harness error: %s\n", err)
		return exitRuntimeErr
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)

	opts := gradingtests.RunOptions{
		HealthCheck: params.category == nil,
		Filter:      params.filters.AsFilter,
		TestLogger: &ConsoleTestLogger{
			Out:                  out,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
			HeaderTitle:          gradingtests.HeaderTitle,
		},
	}
	if params.category != nil {
		opts.Categories = []gradingtests.Category{*params.category}
		fmt.Fprintf(out, "Running test category %q against %s\n", params.category.Key, params.config.backendURL)
	} else {
		fmt.Fprintf(out, "Running test suite against %s\n", params.config.backendURL)
	}

	results := gradingtests.RunTestSuite(harness, gradingtests.SuiteConfig{
		FixturesDir: params.config.fixturesDir,
		UploadWait:  params.config.uploadWait,
	}, opts)

	if results.Aborted {
		fmt.Fprintln(out)
		failColor.Fprintln(out, "System health check failed. Aborting tests.")
	}
	fmt.Fprintln(out)
	framework.PrintResults(out, results, !color.NoColor)

	if err := framework.WriteReportFile(params.config.reportFile, results.Report(params.categoryKey())); err != nil {
		fmt.Fprintln(errOut, err)
		return exitRuntimeErr
	}
	fmt.Fprintf(out, "\nReport saved to: %s\n", params.config.reportFile)

	if params.category != nil && !params.strictExit {
		return exitSuccess
	}
	if !results.OK() {
		return exitTestFailure
	}
	return exitSuccess
}
