package main

import (
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/grading-contract-tests/gradingtests"

	"gopkg.in/yaml.v3"
)

const (
	defaultBackendURL  = "http://localhost:8080"
	defaultFrontendURL = "http://localhost:8081"
	defaultFixturesDir = "./test_files"
	defaultReportFile  = "test_report.json"
)

// fileConfig is the optional YAML configuration file. Any value set here can still be
// overridden by a command-line flag.
type fileConfig struct {
	BackendURL  string `yaml:"backendUrl"`
	FrontendURL string `yaml:"frontendUrl"`
	FixturesDir string `yaml:"fixturesDir"`
	ReportFile  string `yaml:"reportFile"`
	UploadWait  string `yaml:"uploadWait"`
}

type harnessConfig struct {
	backendURL  string
	frontendURL string
	fixturesDir string
	reportFile  string
	uploadWait  time.Duration
}

func defaultHarnessConfig() harnessConfig {
	return harnessConfig{
		backendURL:  defaultBackendURL,
		frontendURL: defaultFrontendURL,
		fixturesDir: defaultFixturesDir,
		reportFile:  defaultReportFile,
		uploadWait:  gradingtests.DefaultUploadWait,
	}
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return fc, nil
}

// apply copies every value that is set in the file over the current configuration.
func (fc fileConfig) apply(c *harnessConfig) error {
	if fc.BackendURL != "" {
		c.backendURL = fc.BackendURL
	}
	if fc.FrontendURL != "" {
		c.frontendURL = fc.FrontendURL
	}
	if fc.FixturesDir != "" {
		c.fixturesDir = fc.FixturesDir
	}
	if fc.ReportFile != "" {
		c.reportFile = fc.ReportFile
	}
	if fc.UploadWait != "" {
		d, err := time.ParseDuration(fc.UploadWait)
		if err != nil {
			return fmt.Errorf("invalid uploadWait %q: %w", fc.UploadWait, err)
		}
		c.uploadWait = d
	}
	return nil
}
