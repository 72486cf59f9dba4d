package config

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"

	"github.com/abdul-hamid-achik/tarpgo/packages/paths"
)

// Profile is one fully-resolved run configuration.
//
// Profiles come either from a table in a config file or from the
// command line. File-derived profiles are mutated exactly once, by
// Merge, and are immutable afterwards except for the exclusion matcher
// cache, which rebuilds itself lazily on read. Profiles are not safe
// for concurrent use; call CompilePatterns before handing one to
// parallel workers.
type Profile struct {
	// Name is the table key the profile came from, empty for the
	// args-derived profile.
	Name string `toml:"-"`
	// Manifest is the path to the project's cargo manifest.
	Manifest string `toml:"manifest-path"`
	// ConfigPath is the config file this profile was loaded from, set
	// by the loader.
	ConfigPath string `toml:"config,omitempty"`
	// Root overrides the project root used for relative-path
	// comparisons.
	Root string `toml:"root,omitempty"`
	// RunIgnored also runs tests marked with the ignored attribute.
	RunIgnored bool `toml:"ignored"`
	// IgnoreTests leaves test functions out of coverage statistics.
	IgnoreTests bool `toml:"ignore-tests"`
	// IgnorePanics leaves panic macros out of coverage statistics.
	IgnorePanics bool `toml:"ignore-panics"`
	// ForceClean adds a clean step when preparing the target project.
	ForceClean bool `toml:"force-clean"`
	Verbose    bool `toml:"verbose"`
	Debug      bool `toml:"debug"`
	// Count records hit counts rather than hit/miss.
	Count          bool `toml:"count"`
	LineCoverage   bool `toml:"line"`
	BranchCoverage bool `toml:"branch"`
	// OutputDirectory is where report files are written.
	OutputDirectory string `toml:"output-dir,omitempty"`
	// Coveralls is the repo token or service key for coveralls.io.
	Coveralls string    `toml:"coveralls,omitempty"`
	CIServer  CiService `toml:"ciserver,omitempty"`
	// ReportURI redirects the coveralls report to a custom endpoint.
	ReportURI string `toml:"report-uri,omitempty"`
	// ForwardSignals forwards unexpected signals to the test binaries.
	ForwardSignals    bool `toml:"forward"`
	AllFeatures       bool `toml:"all-features"`
	NoDefaultFeatures bool `toml:"no-default-features"`
	// All builds every package in the workspace.
	All bool `toml:"all"`
	// Workspace is an alias for All, folded in after decoding.
	Workspace bool `toml:"workspace,omitempty"`
	// TestTimeout is how long a test binary may run before it is
	// considered hung.
	TestTimeout Duration `toml:"timeout"`
	Release     bool     `toml:"release"`
	// NoRun builds the tests without collecting coverage.
	NoRun  bool `toml:"no-run"`
	Locked bool `toml:"locked"`
	Frozen bool `toml:"frozen"`
	// TargetDir is the directory for generated build artifacts.
	TargetDir string    `toml:"target-dir,omitempty"`
	Offline   bool      `toml:"offline"`
	RunTypes  []RunType `toml:"run-types"`
	// Packages to include when building the target project.
	Packages []string `toml:"packages,omitempty"`
	// ExcludePackages are packages left out of testing.
	ExcludePackages []string `toml:"exclude,omitempty"`
	// ExcludedFilesRaw are the user-supplied wildcard patterns naming
	// files left out of coverage results.
	ExcludedFilesRaw []string `toml:"exclude-files,omitempty"`
	// Varargs are forwarded to the test executables.
	Varargs  []string `toml:"args,omitempty"`
	Features []string `toml:"features,omitempty"`
	// UnstableFeatures are unstable cargo features to enable.
	UnstableFeatures []string `toml:"Z,omitempty"`
	// Generate lists the report formats to produce.
	Generate []OutputFile `toml:"out,omitempty"`

	// excludedFiles is the compiled form of ExcludedFilesRaw. A length
	// mismatch with the raw list marks it stale; it is rebuilt on the
	// next exclusion query.
	excludedFiles []glob.Glob
}

// ProfileSet is the non-empty ordered collection of profiles produced
// by a single resolution, in the order they appeared in the source file.
type ProfileSet []*Profile

// Names returns the profile names in set order.
func (s ProfileSet) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// IsCoveralls reports whether a coveralls key is configured.
func (p *Profile) IsCoveralls() bool {
	return p.Coveralls != ""
}

// IsDefaultOutputDir reports whether reports go to the working directory.
func (p *Profile) IsDefaultOutputDir() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}
	return p.OutputDirectory == cwd
}

// ExcludePath reports whether path is excluded from coverage results.
// The path is compared in its form relative to BaseDir; when no
// relative form exists the original path is matched instead. Matching
// never fails: a path no pattern can reason about is simply not
// excluded.
func (p *Profile) ExcludePath(path string) bool {
	if len(p.excludedFiles) != len(p.ExcludedFilesRaw) {
		p.excludedFiles = compilePatterns(p.ExcludedFilesRaw)
	}

	project := p.StripBaseDir(path)
	for _, g := range p.excludedFiles {
		if g.Match(project) {
			return true
		}
	}
	return false
}

// CompilePatterns eagerly rebuilds the exclusion matcher cache if it is
// stale. Profiles handed to parallel workers should be compiled first
// so no worker races the lazy rebuild.
func (p *Profile) CompilePatterns() {
	if len(p.excludedFiles) != len(p.ExcludedFilesRaw) {
		p.excludedFiles = compilePatterns(p.ExcludedFilesRaw)
	}
}

// compilePatterns compiles every raw pattern, one matcher per pattern.
// A pattern that does not compile matches itself literally, so the
// cache length always converges with the raw list.
func compilePatterns(raw []string) []glob.Glob {
	compiled := make([]glob.Glob, 0, len(raw))
	for _, pattern := range raw {
		g, err := glob.Compile(pattern)
		if err != nil {
			log.Warnf("invalid exclusion pattern %q, matching it literally: %v", pattern, err)
			g = glob.MustCompile(glob.QuoteMeta(pattern))
		}
		compiled = append(compiled, g)
	}
	return compiled
}

// BaseDir is the directory exclusion paths are made relative to: the
// root when set (resolved against the working directory if relative),
// else the working directory itself.
func (p *Profile) BaseDir() string {
	if p.Root != "" {
		if filepath.IsAbs(p.Root) {
			return p.Root
		}
		cwd, err := os.Getwd()
		if err != nil {
			return p.Root
		}
		joined := filepath.Join(cwd, p.Root)
		if resolved, err := filepath.EvalSymlinks(joined); err == nil {
			return resolved
		}
		return joined
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// StripBaseDir returns path relative to the profile's base directory,
// or path unchanged when no relative form exists.
func (p *Profile) StripBaseDir(path string) string {
	if rel, ok := paths.RelativePath(path, p.BaseDir()); ok {
		return rel
	}
	return path
}
