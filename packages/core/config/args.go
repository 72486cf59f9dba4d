package config

import (
	"os"
	"path/filepath"
	"time"
)

// Args is the already-parsed command-line value set consumed by a
// resolution. Flag definitions and parsing live with the CLI; this
// struct only carries the values.
type Args struct {
	Debug        bool
	Verbose      bool
	RunIgnored   bool
	IgnoreTests  bool
	IgnorePanics bool
	ForceClean   bool
	Count        bool
	Line         bool
	Branch       bool
	Forward      bool

	AllFeatures       bool
	NoDefaultFeatures bool
	All               bool
	Workspace         bool
	Release           bool
	NoRun             bool
	Locked            bool
	Frozen            bool
	Offline           bool

	// IgnoreConfig bypasses config file discovery entirely.
	IgnoreConfig bool
	// ConfigPath forces use of a specific config file.
	ConfigPath string

	ManifestPath string
	Root         string
	OutputDir    string
	TargetDir    string
	Coveralls    string
	CIServer     string
	ReportURI    string
	Timeout      time.Duration

	RunTypes         []string
	Out              []string
	Packages         []string
	ExcludePackages  []string
	ExcludeFiles     []string
	Features         []string
	UnstableFeatures []string
	Varargs          []string
}

// Profile builds the args-derived profile, filling defaults where a
// value was not given. Debug implies verbose, and line coverage stays
// on unless only branch coverage was requested.
func (a *Args) Profile() (*Profile, error) {
	p := Default()

	p.Debug = a.Debug
	p.Verbose = a.Verbose || a.Debug
	p.RunIgnored = a.RunIgnored
	p.IgnoreTests = a.IgnoreTests
	p.IgnorePanics = a.IgnorePanics
	p.ForceClean = a.ForceClean
	p.Count = a.Count
	p.LineCoverage = a.Line || !a.Branch
	p.BranchCoverage = a.Branch
	p.ForwardSignals = a.Forward
	p.AllFeatures = a.AllFeatures
	p.NoDefaultFeatures = a.NoDefaultFeatures
	p.All = a.All || a.Workspace
	p.Release = a.Release
	p.NoRun = a.NoRun
	p.Locked = a.Locked
	p.Frozen = a.Frozen
	p.Offline = a.Offline

	p.Manifest = manifestPath(a.ManifestPath)
	p.Root = a.Root
	p.OutputDirectory = outputDir(a.OutputDir)
	p.TargetDir = a.TargetDir
	p.Coveralls = a.Coveralls
	p.ReportURI = a.ReportURI
	if a.CIServer != "" {
		p.CIServer = ParseCiService(a.CIServer)
	}
	if a.Timeout > 0 {
		p.TestTimeout = Duration(a.Timeout)
	}

	if len(a.RunTypes) > 0 {
		p.RunTypes = p.RunTypes[:0]
		for _, s := range a.RunTypes {
			rt, err := ParseRunType(s)
			if err != nil {
				return nil, err
			}
			p.RunTypes = append(p.RunTypes, rt)
		}
	}
	for _, s := range a.Out {
		of, err := ParseOutputFile(s)
		if err != nil {
			return nil, err
		}
		p.Generate = append(p.Generate, of)
	}

	p.Packages = append([]string(nil), a.Packages...)
	p.ExcludePackages = append([]string(nil), a.ExcludePackages...)
	p.ExcludedFilesRaw = append([]string(nil), a.ExcludeFiles...)
	p.Features = append([]string(nil), a.Features...)
	p.UnstableFeatures = append([]string(nil), a.UnstableFeatures...)
	p.Varargs = append([]string(nil), a.Varargs...)

	return p, nil
}

// manifestPath resolves the manifest flag against the working
// directory, defaulting to Cargo.toml in the working directory.
func manifestPath(flag string) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	if flag == "" {
		return filepath.Join(cwd, DefaultManifest)
	}
	if filepath.IsAbs(flag) {
		return flag
	}
	return filepath.Join(cwd, flag)
}

func outputDir(flag string) string {
	if flag != "" {
		return flag
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
