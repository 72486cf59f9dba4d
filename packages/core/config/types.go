package config

import (
	"fmt"
	"strings"
	"time"
)

// Duration wraps time.Duration so timeouts can be written as
// human-readable strings ("5s", "2m") in config files.
type Duration time.Duration

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// RunType is a class of tests coverage is collected on.
type RunType string

const (
	RunTests      RunType = "Tests"
	RunDoctests   RunType = "Doctests"
	RunBenchmarks RunType = "Benchmarks"
	RunExamples   RunType = "Examples"
)

// ParseRunType matches a run type name case-insensitively.
func ParseRunType(s string) (RunType, error) {
	switch strings.ToLower(s) {
	case "tests":
		return RunTests, nil
	case "doctests":
		return RunDoctests, nil
	case "benchmarks":
		return RunBenchmarks, nil
	case "examples":
		return RunExamples, nil
	}
	return "", fmt.Errorf("unknown run type %q", s)
}

func (r *RunType) UnmarshalText(text []byte) error {
	parsed, err := ParseRunType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r RunType) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

// OutputFile is a report format to generate.
type OutputFile string

const (
	OutJSON   OutputFile = "Json"
	OutTOML   OutputFile = "Toml"
	OutStdout OutputFile = "Stdout"
	OutXML    OutputFile = "Xml"
	OutHTML   OutputFile = "Html"
	OutLcov   OutputFile = "Lcov"
)

// ParseOutputFile matches an output format name case-insensitively.
func ParseOutputFile(s string) (OutputFile, error) {
	switch strings.ToLower(s) {
	case "json":
		return OutJSON, nil
	case "toml":
		return OutTOML, nil
	case "stdout":
		return OutStdout, nil
	case "xml":
		return OutXML, nil
	case "html":
		return OutHTML, nil
	case "lcov":
		return OutLcov, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

func (o *OutputFile) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFile(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o OutputFile) MarshalText() ([]byte, error) {
	return []byte(o), nil
}

// CiService identifies the CI provider a coverage report is attributed to.
// Unknown values are preserved as-is so reports can name in-house CI setups.
type CiService string

const (
	Travis    CiService = "travis-ci"
	TravisPro CiService = "travis-pro"
	Circle    CiService = "circle-ci"
	Semaphore CiService = "semaphore"
	Jenkins   CiService = "jenkins"
	Codeship  CiService = "codeship"
)

// ParseCiService normalizes known CI identities and passes anything else
// through untouched.
func ParseCiService(s string) CiService {
	switch strings.ToLower(s) {
	case "travis-ci":
		return Travis
	case "travis-pro":
		return TravisPro
	case "circle-ci":
		return Circle
	case "semaphore":
		return Semaphore
	case "jenkins":
		return Jenkins
	case "codeship":
		return Codeship
	}
	return CiService(s)
}

func (c *CiService) UnmarshalText(text []byte) error {
	*c = ParseCiService(string(text))
	return nil
}

func (c CiService) MarshalText() ([]byte, error) {
	return []byte(c), nil
}
