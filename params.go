package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/grading-contract-tests/framework"
	"github.com/launchdarkly/grading-contract-tests/gradingtests"
)

type commandParams struct {
	config     harnessConfig
	configFile string
	filters    framework.RegexFilters
	category   *gradingtests.Category
	debug      bool
	debugAll   bool
	noColor    bool
	strictExit bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	var flagValues harnessConfig
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [options] [category]\n\n", fs.Name())
		fmt.Fprintf(errOut, "Categories: %s (default: health check, then all)\n\n",
			strings.Join(gradingtests.CategoryKeys(), ", "))
		fs.PrintDefaults()
	}
	fs.StringVar(&flagValues.backendURL, "backend-url", defaultBackendURL, "base URL of the grading backend")
	fs.StringVar(&flagValues.frontendURL, "frontend-url", defaultFrontendURL, "base URL of the frontend")
	fs.StringVar(&flagValues.fixturesDir, "fixtures", defaultFixturesDir, "directory containing fixture files for upload tests")
	fs.StringVar(&flagValues.reportFile, "report", defaultReportFile, "path of the JSON report to write")
	fs.DurationVar(&flagValues.uploadWait, "upload-wait", gradingtests.DefaultUploadWait,
		"time to wait for a new submission to be processed")
	fs.StringVar(&c.configFile, "config", "", "optional YAML configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.strictExit, "strict-exit", false, "exit with status 1 on test failures even when running a single category")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}

	c.config = defaultHarnessConfig()
	if c.configFile != "" {
		fc, err := loadConfigFile(c.configFile)
		if err == nil {
			err = fc.apply(&c.config)
		}
		if err != nil {
			fmt.Fprintln(errOut, err)
			return false
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend-url":
			c.config.backendURL = flagValues.backendURL
		case "frontend-url":
			c.config.frontendURL = flagValues.frontendURL
		case "fixtures":
			c.config.fixturesDir = flagValues.fixturesDir
		case "report":
			c.config.reportFile = flagValues.reportFile
		case "upload-wait":
			c.config.uploadWait = flagValues.uploadWait
		}
	})

	switch fs.NArg() {
	case 0:
	case 1:
		category, ok := gradingtests.FindCategory(fs.Arg(0))
		if !ok {
			fmt.Fprintf(errOut, "Unknown test category: %s\n", fs.Arg(0))
			fmt.Fprintf(errOut, "Available: %s\n", strings.Join(gradingtests.CategoryKeys(), ", "))
			return false
		}
		c.category = &category
	default:
		fmt.Fprintln(errOut, "at most one category may be specified")
		fs.Usage()
		return false
	}
	if c.config.uploadWait < 0 {
		c.config.uploadWait = 0
	}
	return true
}

// categoryKey is the selected category's key, or "" for a full run.
func (c *commandParams) categoryKey() string {
	if c.category == nil {
		return ""
	}
	return c.category.Key
}
